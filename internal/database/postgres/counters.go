package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/domain"
)

// CounterRepository implements repository.DailyCounter for PostgreSQL
type CounterRepository struct {
	db *pgxpool.Pool
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{db: db}
}

// GetDailyCounter reads the counter outside any wager transaction.
// Missing rows are reported as a zero counter.
func (r *CounterRepository) GetDailyCounter(ctx context.Context, playerID, venueID string, playDate time.Time) (*domain.DailyPlayCounter, error) {
	counter := &domain.DailyPlayCounter{
		PlayerID: playerID,
		VenueID:  venueID,
		PlayDate: playDate,
	}
	err := r.db.QueryRow(ctx, sqlGetDailyCounter, playerID, venueID, playDate).
		Scan(&counter.PlaysCount, &counter.TotalWagered, &counter.TotalWon)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCounter, err)
	}
	return counter, nil
}

// PruneDailyCounters deletes counters for play dates strictly before before
func (r *CounterRepository) PruneDailyCounters(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, sqlPruneDailyCounters, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPruneCounters, err)
	}
	return tag.RowsAffected(), nil
}
