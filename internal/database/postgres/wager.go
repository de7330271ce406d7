package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/repository"
)

// WagerRepository implements repository.Wager for PostgreSQL
type WagerRepository struct {
	db *pgxpool.Pool
}

// NewWagerRepository creates a new WagerRepository
func NewWagerRepository(db *pgxpool.Pool) *WagerRepository {
	return &WagerRepository{db: db}
}

// BeginWagerTx opens the transaction a single play settles in
func (r *WagerRepository) BeginWagerTx(ctx context.Context) (repository.WagerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &wagerTx{ledgerTx: &ledgerTx{tx: tx}}, nil
}

// wagerTx adds the counter and play writes to a ledger transaction
type wagerTx struct {
	*ledgerTx
}

func (t *wagerTx) IncrementDailyCounter(ctx context.Context, inc domain.DailyCounterIncrement, quota int) (*domain.DailyPlayCounter, error) {
	if quota < 1 {
		return nil, domain.ErrQuotaExceeded
	}

	counter := &domain.DailyPlayCounter{
		PlayerID: inc.PlayerID,
		VenueID:  inc.VenueID,
		PlayDate: inc.PlayDate,
	}
	err := t.tx.QueryRow(ctx, sqlIncrementDailyCounter,
		inc.PlayerID,
		inc.VenueID,
		inc.PlayDate,
		inc.Wagered,
		inc.Won,
		quota,
	).Scan(&counter.PlaysCount, &counter.TotalWagered, &counter.TotalWon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuotaExceeded
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementCounter, err)
	}
	return counter, nil
}

func (t *wagerTx) InsertPlayRecord(ctx context.Context, rec *domain.PlayRecord) error {
	playID, err := uuid.Parse(rec.PlayID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidPlayID, err)
	}
	grid, err := json.Marshal(rec.OutcomeGrid)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalGrid, err)
	}

	var line pgtype.Text
	if rec.WinningLine != nil {
		line = pgtype.Text{String: string(*rec.WinningLine), Valid: true}
	}

	_, err = t.tx.Exec(ctx, sqlInsertPlay,
		playID,
		rec.PlayerID,
		rec.VenueID,
		rec.GameMode,
		rec.BetAmount,
		rec.PayoutAmount,
		string(rec.PayoutClass),
		line,
		grid,
		rec.BalanceBefore,
		rec.BalanceAfter,
		rec.Signature,
		rec.PlayDate,
		rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", ErrMsgDuplicatePlay, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlay, err)
	}
	return nil
}
