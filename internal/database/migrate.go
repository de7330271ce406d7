package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/migrations"
)

// Migrator applies the embedded goose migrations through a pgx pool
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator opens a database/sql handle over pool for goose
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return &Migrator{db: db, provider: provider}, nil
}

// Up applies every pending migration
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	log := logger.FromContext(ctx)
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	logger.FromContext(ctx).Info(LogMsgMigrationRolledBack, "version", r.Source.Version)
	return nil
}

// Status lists every known migration with its state
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return statuses, nil
}

// Close releases the database/sql handle. The pool stays open.
func (m *Migrator) Close() error {
	return m.db.Close()
}

// Migrate applies pending migrations on pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	m, err := NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up(ctx)
}
