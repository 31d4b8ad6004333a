package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"investapi/internal/domain"
)

// DB owns the connection pool lifecycle: opened once at startup, closed
// at shutdown.
type DB struct {
	Pool *pgxpool.Pool

	// commandTimeout bounds every query, including the time spent
	// queueing for a pool connection.
	commandTimeout time.Duration
}

// Options configures the pool.
type Options struct {
	URL            string
	MinConns       int
	MaxConns       int
	ConnectTimeout time.Duration
	CommandTimeout time.Duration
}

func Connect(ctx context.Context, opts Options) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, err
	}
	cfg.MinConns = int32(opts.MinConns)
	cfg.MaxConns = int32(opts.MaxConns)
	cfg.HealthCheckPeriod = 30 * time.Second
	if opts.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	timeout := opts.CommandTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DB{Pool: pool, commandTimeout: timeout}, nil
}

func (db *DB) Close() { db.Pool.Close() }

// CheckHealth runs a trivial round-trip query.
func (db *DB) CheckHealth(ctx context.Context) error {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	var alive bool
	if err := db.Pool.QueryRow(ctx, `select $1::bool`, true).Scan(&alive); err != nil {
		return &domain.QueryError{Op: "check health", Err: err}
	}
	return nil
}

func (db *DB) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.commandTimeout)
}
