package repository

import (
	"context"

	"github.com/osse101/wagerengine/internal/domain"
)

// Ledger defines the interface for the append-only balance log
type Ledger interface {
	GetBalance(ctx context.Context, playerID string) (int64, error)
	ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.LedgerTransaction, error)
	BeginLedgerTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx appends balance events under a per-player serialising lock.
// LockPlayer must be called before CurrentBalance for the read to be stable.
type LedgerTx interface {
	Tx // Commit, Rollback

	LockPlayer(ctx context.Context, playerID string) error
	CurrentBalance(ctx context.Context, playerID string) (int64, error)
	// AppendTransaction inserts t and fills in its ID and CreatedAt
	AppendTransaction(ctx context.Context, t *domain.LedgerTransaction) error
}
