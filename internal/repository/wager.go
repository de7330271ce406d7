package repository

import (
	"context"
	"time"

	"github.com/osse101/wagerengine/internal/domain"
)

// Wager opens the single transaction scope a play settles in
type Wager interface {
	BeginWagerTx(ctx context.Context) (WagerTx, error)
}

// WagerTx extends LedgerTx with the play-specific writes.
// Everything written through it commits or rolls back together.
type WagerTx interface {
	LedgerTx

	// IncrementDailyCounter applies inc only while plays_count < quota and
	// returns domain.ErrQuotaExceeded otherwise.
	IncrementDailyCounter(ctx context.Context, inc domain.DailyCounterIncrement, quota int) (*domain.DailyPlayCounter, error)
	InsertPlayRecord(ctx context.Context, rec *domain.PlayRecord) error
}

// DailyCounter reads play counters outside a wager transaction
type DailyCounter interface {
	// GetDailyCounter returns a zero counter when no play was recorded yet
	GetDailyCounter(ctx context.Context, playerID, venueID string, playDate time.Time) (*domain.DailyPlayCounter, error)
}

// CounterPruner deletes daily counters that can no longer affect a quota.
// Settled plays stay in the play log, so audits are unaffected.
type CounterPruner interface {
	PruneDailyCounters(ctx context.Context, before time.Time) (int64, error)
}

// Play reads settled plays for audit
type Play interface {
	GetPlay(ctx context.Context, playID string) (*domain.PlayRecord, error)
	ListPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.PlayRecord, error)
}
