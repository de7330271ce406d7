package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/repository"
)

// Entry describes one debit or credit to append.
type Entry struct {
	PlayerID    string
	Category    domain.LedgerCategory
	Amount      int64
	ReferenceID string
	Metadata    map[string]interface{}
}

// Book appends debits and credits inside a caller-owned transaction.
// The player lock is taken on first use and held until the transaction ends.
type Book struct {
	tx     repository.LedgerTx
	locked map[string]bool
}

// NewBook wraps tx.
func NewBook(tx repository.LedgerTx) *Book {
	return &Book{tx: tx, locked: make(map[string]bool)}
}

// Balance locks the player and returns the balance derived from the log.
func (b *Book) Balance(ctx context.Context, playerID string) (int64, error) {
	if err := b.lock(ctx, playerID); err != nil {
		return 0, err
	}
	balance, err := b.tx.CurrentBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgReadBalanceFailed, err)
	}
	return balance, nil
}

// Debit removes e.Amount, failing with domain.ErrInsufficientFunds rather
// than letting the balance go negative.
func (b *Book) Debit(ctx context.Context, e Entry) (*domain.LedgerTransaction, error) {
	if e.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	balance, err := b.Balance(ctx, e.PlayerID)
	if err != nil {
		return nil, err
	}
	if balance < e.Amount {
		return nil, domain.ErrInsufficientFunds
	}
	return b.append(ctx, e, domain.DirectionDebit, balance-e.Amount)
}

// Credit adds e.Amount.
func (b *Book) Credit(ctx context.Context, e Entry) (*domain.LedgerTransaction, error) {
	if e.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	balance, err := b.Balance(ctx, e.PlayerID)
	if err != nil {
		return nil, err
	}
	return b.append(ctx, e, domain.DirectionCredit, balance+e.Amount)
}

func (b *Book) lock(ctx context.Context, playerID string) error {
	if b.locked[playerID] {
		return nil
	}
	if err := b.tx.LockPlayer(ctx, playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLockPlayerFailed, err)
	}
	b.locked[playerID] = true
	return nil
}

func (b *Book) append(ctx context.Context, e Entry, dir domain.LedgerDirection, balanceAfter int64) (*domain.LedgerTransaction, error) {
	t := &domain.LedgerTransaction{
		PlayerID:     e.PlayerID,
		Direction:    dir,
		Category:     e.Category,
		Amount:       e.Amount,
		BalanceAfter: balanceAfter,
		ReferenceID:  e.ReferenceID,
		Metadata:     e.Metadata,
	}
	if err := b.tx.AppendTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAppendFailed, err)
	}
	return t, nil
}
