package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/logger"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// Options tunes the connection pool
type Options struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
	ApplicationName string
}

// DefaultOptions returns pool settings suitable for a single service instance
func DefaultOptions() Options {
	return Options{
		MaxConns:        DefaultMaxConnections,
		MaxConnIdleTime: DefaultMaxConnIdleTime,
		MaxConnLifetime: DefaultMaxConnLifetime,
		ApplicationName: DefaultApplicationName,
	}
}

// NewPool creates a new PostgreSQL connection pool and verifies it with a ping
func NewPool(ctx context.Context, connString string, opts Options) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	if opts.MaxConnLifetime > 0 {
		config.MaxConnLifetime = opts.MaxConnLifetime
	}
	if opts.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = opts.MaxConnIdleTime
	}
	if opts.ApplicationName != "" {
		config.ConnConfig.RuntimeParams[RuntimeParamApplicationName] = opts.ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", config.MaxConns)
	return pool, nil
}
