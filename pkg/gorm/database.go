package gorm

import (
	"log/slog"
	"time"

	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

type Options struct {
	LogLevel slog.Level
	NowFunc  func() time.Time
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		LogLevel: slog.LevelError,
		NowFunc:  time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithLogLevel(level slog.Level) OptionFunc {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithNowFunc overrides the clock used for the automatic timestamps.
func WithNowFunc(nowFunc func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.NowFunc = nowFunc
	}
}

// Open opens the sqlite database backing the host application, configured as
// the library expects it: single connection, WAL journaling, foreign keys
// enforced.
func Open(dsn string, funcs ...OptionFunc) (*gorm.DB, error) {
	opts := NewOptions(funcs...)

	dialector := gormlite.Open(dsn)

	var logLevel logger.LogLevel
	switch opts.LogLevel {
	case slog.LevelError:
		logLevel = logger.Error
	case slog.LevelWarn:
		logLevel = logger.Warn
	case slog.LevelInfo:
		logLevel = logger.Info
	default:
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: opts.NowFunc,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.LogLevel == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}
