package limiter

import (
	"time"

	"github.com/osse101/wagerengine/internal/domain"
)

// Config holds limiter configuration
type Config struct {
	// DevMode ignores venue quotas when true
	DevMode bool
}

// EffectiveQuota returns the quota enforced for venue
func (c Config) EffectiveQuota(venue *domain.Venue) int {
	if c.DevMode {
		return DevModeQuota
	}
	return venue.DailyPlayQuota
}

// PlayDate returns the calendar day of now in the venue time zone, as a UTC
// midnight value suitable for a date column.
func PlayDate(timezone string, now time.Time) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTimezone
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
