package gorm

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// WithRetry runs fn inside a transaction, retrying with exponential backoff
// when sqlite reports one of the given error codes. Save operations on a
// single-writer sqlite database should run through it with sqlite3.LOCKED
// and sqlite3.BUSY.
func WithRetry(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	backoff := 500 * time.Millisecond
	maxRetries := 10
	retries := 0

	for {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := fn(ctx, tx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			if retries >= maxRetries {
				return errors.WithStack(err)
			}

			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) {
				if !slices.Contains(codes, sqliteErr.Code()) {
					return errors.WithStack(err)
				}

				slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

				retries++
				time.Sleep(backoff)
				backoff *= 2

				continue
			}

			return errors.WithStack(err)
		}

		return nil
	}
}
