package venue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/wagerengine/internal/concurrency"
	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/repository"
)

// Service reads and updates venue wagering settings
type Service interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
	UpsertVenue(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
}

// ModeRegistry reports whether a game mode name is configured
type ModeRegistry interface {
	HasMode(name string) bool
}

type service struct {
	repo  repository.Venue
	modes ModeRegistry
	cache *venueCache
	fills *concurrency.LockManager
}

// NewService creates a venue service with a TTL cache in front of repo
func NewService(repo repository.Venue, modes ModeRegistry, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		modes: modes,
		cache: newVenueCache(cacheSize, cacheTTL),
		fills: concurrency.NewLockManager(),
	}
}

func (s *service) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	if v, ok := s.cache.Get(venueID); ok {
		return v, nil
	}

	// Concurrent misses for one venue share a single repository read
	unlock := s.fills.Lock(venueID)
	defer unlock()
	if v, ok := s.cache.Get(venueID); ok {
		return v, nil
	}

	v, err := s.repo.GetVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetVenueFailed, err)
	}
	s.cache.Set(v)
	return v, nil
}

func (s *service) UpsertVenue(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	if err := s.validate(v); err != nil {
		return nil, err
	}

	v.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpsertVenue(ctx, v); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpsertVenueFailed, err)
	}
	s.cache.Invalidate(v.ID)

	logger.FromContext(ctx).Info(LogMsgVenueUpdated,
		"venue_id", v.ID,
		"wagering_enabled", v.WageringEnabled,
		"daily_play_quota", v.DailyPlayQuota,
		"game_mode", v.GameMode)
	return v, nil
}

func (s *service) validate(v *domain.Venue) error {
	if strings.TrimSpace(v.ID) == "" || v.DailyPlayQuota < 0 {
		return domain.ErrInvalidVenueData
	}
	if _, err := time.LoadLocation(v.Timezone); err != nil || v.Timezone == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTimezone, v.Timezone)
	}
	if s.modes != nil && !s.modes.HasMode(v.GameMode) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownGameMode, v.GameMode)
	}
	return nil
}
