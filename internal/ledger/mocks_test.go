package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBalance(ctx context.Context, playerID string) (int64, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

func (m *MockRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockLedgerTx) LockPlayer(ctx context.Context, playerID string) error {
	return m.Called(ctx, playerID).Error(0)
}

func (m *MockLedgerTx) CurrentBalance(ctx context.Context, playerID string) (int64, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerTx) AppendTransaction(ctx context.Context, t *domain.LedgerTransaction) error {
	return m.Called(ctx, t).Error(0)
}
