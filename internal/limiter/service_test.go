package limiter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wagerengine/internal/domain"
)

type MockVenueProvider struct {
	mock.Mock
}

func (m *MockVenueProvider) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockCounterRepo struct {
	mock.Mock
}

func (m *MockCounterRepo) GetDailyCounter(ctx context.Context, playerID, venueID string, playDate time.Time) (*domain.DailyPlayCounter, error) {
	args := m.Called(ctx, playerID, venueID, playDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyPlayCounter), args.Error(1)
}

type MockCounterTx struct {
	mock.Mock
}

func (m *MockCounterTx) IncrementDailyCounter(ctx context.Context, inc domain.DailyCounterIncrement, quota int) (*domain.DailyPlayCounter, error) {
	args := m.Called(ctx, inc, quota)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyPlayCounter), args.Error(1)
}

var fixedNow = time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC)

func newTestService(venues VenueProvider, counters *MockCounterRepo, cfg Config) *service {
	s := NewService(venues, counters, cfg).(*service)
	s.now = func() time.Time { return fixedNow }
	return s
}

func testVenue(quota int) *domain.Venue {
	return &domain.Venue{ID: "venue-1", WageringEnabled: true, DailyPlayQuota: quota, Timezone: "UTC", GameMode: "classic"}
}

func TestPlayDate(t *testing.T) {
	tests := []struct {
		name     string
		tz       string
		expected time.Time
	}{
		{"utc", "UTC", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"ahead of utc rolls to next day", "Asia/Tokyo", time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)},
		{"behind utc", "America/New_York", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlayDate(tt.tz, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := PlayDate("Mars/Olympus_Mons", fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

func TestCanPlay(t *testing.T) {
	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		quota         int
		played        int
		wantAllowed   bool
		wantRemaining int
	}{
		{"fresh day", 10, 0, true, 10},
		{"some played", 10, 7, true, 3},
		{"last play available", 10, 9, true, 1},
		{"quota used up", 10, 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venues := new(MockVenueProvider)
			counters := new(MockCounterRepo)
			venues.On("GetVenue", mock.Anything, "venue-1").Return(testVenue(tt.quota), nil)
			counters.On("GetDailyCounter", mock.Anything, "player-1", "venue-1", date).
				Return(&domain.DailyPlayCounter{PlaysCount: tt.played}, nil)

			allowed, remaining, err := newTestService(venues, counters, Config{}).CanPlay(context.Background(), "player-1", "venue-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, allowed)
			assert.Equal(t, tt.wantRemaining, remaining)
			counters.AssertExpectations(t)
		})
	}
}

func TestCanPlay_ZeroQuotaSkipsCounterRead(t *testing.T) {
	venues := new(MockVenueProvider)
	counters := new(MockCounterRepo)
	venues.On("GetVenue", mock.Anything, "venue-1").Return(testVenue(0), nil)

	allowed, remaining, err := newTestService(venues, counters, Config{}).CanPlay(context.Background(), "player-1", "venue-1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	counters.AssertNotCalled(t, "GetDailyCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCanPlay_Errors(t *testing.T) {
	t.Run("venue lookup", func(t *testing.T) {
		venues := new(MockVenueProvider)
		venues.On("GetVenue", mock.Anything, "venue-1").Return(nil, domain.ErrVenueNotFound)

		_, _, err := newTestService(venues, new(MockCounterRepo), Config{}).CanPlay(context.Background(), "player-1", "venue-1")
		assert.ErrorIs(t, err, domain.ErrVenueNotFound)
	})

	t.Run("counter read", func(t *testing.T) {
		venues := new(MockVenueProvider)
		counters := new(MockCounterRepo)
		venues.On("GetVenue", mock.Anything, "venue-1").Return(testVenue(5), nil)
		counters.On("GetDailyCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, _, err := newTestService(venues, counters, Config{}).CanPlay(context.Background(), "player-1", "venue-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read daily play counter")
	})
}

func TestRecordPlay(t *testing.T) {
	inc := domain.DailyCounterIncrement{
		PlayerID: "player-1",
		VenueID:  "venue-1",
		PlayDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Wagered:  10,
		Won:      60,
	}

	t.Run("increments", func(t *testing.T) {
		tx := new(MockCounterTx)
		tx.On("IncrementDailyCounter", mock.Anything, inc, 3).
			Return(&domain.DailyPlayCounter{PlaysCount: 1, TotalWagered: 10, TotalWon: 60}, nil)

		counter, remaining, err := newTestService(nil, nil, Config{}).RecordPlay(context.Background(), tx, testVenue(3), inc)
		require.NoError(t, err)
		assert.Equal(t, 1, counter.PlaysCount)
		assert.Equal(t, 2, remaining)
		tx.AssertExpectations(t)
	})

	t.Run("concurrent request took the last play", func(t *testing.T) {
		tx := new(MockCounterTx)
		tx.On("IncrementDailyCounter", mock.Anything, inc, 3).Return(nil, domain.ErrQuotaExceeded)

		_, _, err := newTestService(nil, nil, Config{}).RecordPlay(context.Background(), tx, testVenue(3), inc)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
		assert.Equal(t, domain.CodeQuotaExceeded, domain.ErrorCodeOf(err))
		assert.Equal(t, fmt.Sprintf(ErrFmtQuotaReached, 3, "venue-1"), err.Error())
	})

	t.Run("zero quota never writes", func(t *testing.T) {
		tx := new(MockCounterTx)

		_, _, err := newTestService(nil, nil, Config{}).RecordPlay(context.Background(), tx, testVenue(0), inc)
		assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
		tx.AssertNotCalled(t, "IncrementDailyCounter", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure is not a quota error", func(t *testing.T) {
		tx := new(MockCounterTx)
		tx.On("IncrementDailyCounter", mock.Anything, inc, 3).Return(nil, errors.New("deadlock detected"))

		_, _, err := newTestService(nil, nil, Config{}).RecordPlay(context.Background(), tx, testVenue(3), inc)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrQuotaExceeded)
	})

	t.Run("dev mode lifts quota", func(t *testing.T) {
		tx := new(MockCounterTx)
		tx.On("IncrementDailyCounter", mock.Anything, inc, DevModeQuota).
			Return(&domain.DailyPlayCounter{PlaysCount: 42}, nil)

		_, _, err := newTestService(nil, nil, Config{DevMode: true}).RecordPlay(context.Background(), tx, testVenue(0), inc)
		require.NoError(t, err)
		tx.AssertExpectations(t)
	})
}
