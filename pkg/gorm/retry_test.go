package gorm

import (
	"context"
	"testing"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var errBoom = errors.New("boom")

func TestWithRetryPassthrough(t *testing.T) {
	db := openTestDatabase(t)

	calls := 0

	err := WithRetry(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		calls++
		return errors.WithStack(errBoom)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	if !errors.Is(err, errBoom) {
		t.Errorf("err: expected '%v', got '%v'", errBoom, err)
	}

	if e, g := 1, calls; e != g {
		t.Errorf("calls: expected '%d', got '%d'", e, g)
	}
}

func TestWithRetryRollback(t *testing.T) {
	db := openTestDatabase(t)

	err := WithRetry(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Create(&article{Title: "La Parure"}).Error; err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(errBoom)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if !errors.Is(err, errBoom) {
		t.Errorf("err: expected '%v', got '%v'", errBoom, err)
	}

	var count int64
	if err := db.Model(&article{}).Count(&count).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), count; e != g {
		t.Errorf("count: expected '%d', got '%d'", e, g)
	}
}
