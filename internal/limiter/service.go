package limiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/repository"
	"github.com/osse101/wagerengine/internal/utils"
)

// VenueProvider looks up venue settings
type VenueProvider interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}

// CounterTx is the part of a wager transaction the limiter writes through
type CounterTx interface {
	IncrementDailyCounter(ctx context.Context, inc domain.DailyCounterIncrement, quota int) (*domain.DailyPlayCounter, error)
}

// Service enforces the per-player, per-venue daily play quota
type Service interface {
	// CanPlay is the unlocked fast path used before any write
	// Returns: (allowed bool, remaining int, error)
	CanPlay(ctx context.Context, playerID, venueID string) (bool, int, error)

	// Remaining is CanPlay for a venue the caller already loaded
	Remaining(ctx context.Context, playerID string, venue *domain.Venue) (int, error)

	// RecordPlay consumes one play inside the caller's transaction and returns
	// the updated counter with the plays left today. A concurrent request that
	// took the last play makes this return QuotaReached.
	RecordPlay(ctx context.Context, tx CounterTx, venue *domain.Venue, inc domain.DailyCounterIncrement) (*domain.DailyPlayCounter, int, error)

	// Today returns the current play date for venue
	Today(venue *domain.Venue) (time.Time, error)
}

// QuotaReached is returned when no plays are left today
type QuotaReached struct {
	VenueID string
	Quota   int
}

func (e QuotaReached) Error() string {
	return fmt.Sprintf(ErrFmtQuotaReached, e.Quota, e.VenueID)
}

// Unwrap lets errors.Is match domain.ErrQuotaExceeded
func (e QuotaReached) Unwrap() error {
	return domain.ErrQuotaExceeded
}

type service struct {
	venues   VenueProvider
	counters repository.DailyCounter
	config   Config
	now      func() time.Time
}

// NewService creates a new limiter service
func NewService(venues VenueProvider, counters repository.DailyCounter, config Config) Service {
	return &service{
		venues:   venues,
		counters: counters,
		config:   config,
		now:      time.Now,
	}
}

func (s *service) CanPlay(ctx context.Context, playerID, venueID string) (bool, int, error) {
	venue, err := s.venues.GetVenue(ctx, venueID)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgLoadVenueFailed, err)
	}
	remaining, err := s.Remaining(ctx, playerID, venue)
	if err != nil {
		return false, 0, err
	}
	return remaining > 0, remaining, nil
}

func (s *service) Remaining(ctx context.Context, playerID string, venue *domain.Venue) (int, error) {
	quota := s.config.EffectiveQuota(venue)
	if quota < 1 {
		return 0, nil
	}

	date, err := s.Today(venue)
	if err != nil {
		return 0, err
	}
	counter, err := s.counters.GetDailyCounter(ctx, playerID, venue.ID, date)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgReadCounterFailed, err)
	}
	return utils.SafeSub(quota, counter.PlaysCount), nil
}

func (s *service) RecordPlay(ctx context.Context, tx CounterTx, venue *domain.Venue, inc domain.DailyCounterIncrement) (*domain.DailyPlayCounter, int, error) {
	log := logger.FromContext(ctx)

	if s.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "venue_id", venue.ID, "player_id", inc.PlayerID)
	}
	quota := s.config.EffectiveQuota(venue)
	if quota < 1 {
		return nil, 0, QuotaReached{VenueID: venue.ID, Quota: quota}
	}

	counter, err := tx.IncrementDailyCounter(ctx, inc, quota)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			log.Info(LogMsgRaceConditionDetected, "venue_id", venue.ID, "player_id", inc.PlayerID)
			return nil, 0, QuotaReached{VenueID: venue.ID, Quota: quota}
		}
		return nil, 0, fmt.Errorf(ErrMsgRecordPlayFailed, err)
	}

	log.Debug(LogMsgPlayRecorded, "venue_id", venue.ID, "player_id", inc.PlayerID, "plays_count", counter.PlaysCount)
	return counter, utils.SafeSub(quota, counter.PlaysCount), nil
}

func (s *service) Today(venue *domain.Venue) (time.Time, error) {
	return PlayDate(venue.Timezone, s.now())
}
