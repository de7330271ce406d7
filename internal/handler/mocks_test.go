package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/ledger"
	"github.com/osse101/wagerengine/internal/limiter"
	"github.com/osse101/wagerengine/internal/venue"
	"github.com/osse101/wagerengine/internal/wager"
)

var (
	_ database.Pool   = (*MockDBPool)(nil)
	_ wager.Service   = (*MockWagerService)(nil)
	_ limiter.Service = (*MockLimiterService)(nil)
	_ ledger.Service  = (*MockLedgerService)(nil)
	_ venue.Service   = (*MockVenueService)(nil)
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockWagerService struct {
	mock.Mock
}

func (m *MockWagerService) PlaceWager(ctx context.Context, req domain.WagerRequest) (*domain.SettlementResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockWagerService) VerifyPlay(ctx context.Context, playID string) (*domain.PlayVerification, error) {
	args := m.Called(ctx, playID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayVerification), args.Error(1)
}

func (m *MockWagerService) ListPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.PlayRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayRecord), args.Error(1)
}

type MockLimiterService struct {
	mock.Mock
}

func (m *MockLimiterService) CanPlay(ctx context.Context, playerID, venueID string) (bool, int, error) {
	args := m.Called(ctx, playerID, venueID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockLimiterService) Remaining(ctx context.Context, playerID string, v *domain.Venue) (int, error) {
	args := m.Called(ctx, playerID, v)
	return args.Int(0), args.Error(1)
}

func (m *MockLimiterService) RecordPlay(ctx context.Context, tx limiter.CounterTx, v *domain.Venue, inc domain.DailyCounterIncrement) (*domain.DailyPlayCounter, int, error) {
	args := m.Called(ctx, tx, v, inc)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*domain.DailyPlayCounter), args.Int(1), args.Error(2)
}

func (m *MockLimiterService) Today(v *domain.Venue) (time.Time, error) {
	args := m.Called(v)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Balance(ctx context.Context, playerID string) (int64, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Deposit(ctx context.Context, playerID string, amount int64, source string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, playerID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, playerID string, limit int) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueService) UpsertVenue(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}
