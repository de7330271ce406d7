package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/metrics"
	"github.com/osse101/wagerengine/internal/repository"
)

// Service exposes the balance ledger outside of a wager
type Service interface {
	Balance(ctx context.Context, playerID string) (int64, error)
	Deposit(ctx context.Context, playerID string, amount int64, source string) (*domain.LedgerTransaction, error)
	History(ctx context.Context, playerID string, limit int) ([]domain.LedgerTransaction, error)
}

type service struct {
	repo repository.Ledger
}

// NewService creates a ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

func (s *service) Balance(ctx context.Context, playerID string) (int64, error) {
	if strings.TrimSpace(playerID) == "" {
		return 0, domain.ErrInvalidPlayerID
	}
	balance, err := s.repo.GetBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgReadBalanceFailed, err)
	}
	return balance, nil
}

// Deposit funds a player. Each deposit gets its own reference id.
func (s *service) Deposit(ctx context.Context, playerID string, amount int64, source string) (*domain.LedgerTransaction, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, domain.ErrInvalidPlayerID
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	var meta map[string]interface{}
	if source != "" {
		meta = map[string]interface{}{MetaKeySource: source}
	}
	t, err := NewBook(tx).Credit(ctx, Entry{
		PlayerID:    playerID,
		Category:    domain.CategoryDeposit,
		Amount:      amount,
		ReferenceID: uuid.NewString(),
		Metadata:    meta,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	metrics.DepositsApplied.Inc()
	logger.FromContext(ctx).Info(LogMsgDepositApplied, "player_id", playerID, "amount", amount, "balance_after", t.BalanceAfter)
	return t, nil
}

func (s *service) History(ctx context.Context, playerID string, limit int) ([]domain.LedgerTransaction, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, domain.ErrInvalidPlayerID
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	txs, err := s.repo.ListTransactions(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTransactionsFail, err)
	}
	return txs, nil
}
