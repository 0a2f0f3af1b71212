package setup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bornholm/timestamped/internal/config"
	timestampedGorm "github.com/bornholm/timestamped/pkg/gorm"
	"github.com/pkg/errors"
)

type entry struct {
	timestampedGorm.Model

	ID uint `gorm:"primarykey"`

	Label string
}

func TestNewGormDatabaseFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Setenv("TIMESTAMPED_STORAGE_DATABASE_DSN", filepath.Join(t.TempDir(), "data.sqlite"))

	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	db, err := NewGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	e := &entry{Label: "imported"}

	if err := db.Create(e).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var got entry
	if err := db.First(&got, "id = ?", e.ID).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if got.Created.IsZero() {
		t.Errorf("got.Created: expected non-zero value")
	}

	if got.Modified.IsZero() {
		t.Errorf("got.Modified: expected non-zero value")
	}
}
