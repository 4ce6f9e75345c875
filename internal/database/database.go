// Package database centralises sqlx connection helpers.  The driver is
// lib/pq; the content schema relies on Postgres jsonb columns and the
// pg_trgm extension for the SQL-side slug fallback.
//
// Public entry points:
//
//	Open(ctx, dsn)                     – quick helper with conservative pool sizes.
//	OpenWithOptions(ctx, dsn, options) – fine-grained control, retry on cold start.
//
// Both helpers Ping the database before returning so callers can fail fast
// during bootstrap.  Callers should Close() the returned *sqlx.DB when no
// longer needed.
package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"go.uber.org/zap"
)

// Options tunes one connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Retries         int
	RetryBackoff    time.Duration
}

// Defaults returns the pool settings used by the web process.
func Defaults() Options {
	return Options{
		MaxOpenConns:    15,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		Retries:         2,
		RetryBackoff:    500 * time.Millisecond,
	}
}

// Open returns a *sqlx.DB with the default pool settings.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(ctx, dsn, Defaults())
}

// OpenWithOptions opens and pings a pool, retrying on transient failures
// so a cold database container does not kill the bootstrap.
func OpenWithOptions(ctx context.Context, dsn string, opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	for attempt := 0; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if attempt >= opts.Retries {
			break
		}
		zap.S().Warnw("database ping failed, retrying",
			"attempt", attempt+1, "err", err)
		select {
		case <-time.After(opts.RetryBackoff):
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		}
	}

	_ = db.Close()
	return nil, err
}
