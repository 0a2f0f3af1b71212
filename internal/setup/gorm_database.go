package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/timestamped/internal/config"
	timestampedGorm "github.com/bornholm/timestamped/pkg/gorm"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	db, err := timestampedGorm.Open(
		conf.Storage.Database.DSN,
		timestampedGorm.WithLogLevel(slog.Level(conf.Logger.Level)),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
})

func NewGormDatabaseFromConfig(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}
