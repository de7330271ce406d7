package venue

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/wagerengine/internal/domain"
)

type cachedVenueEntry struct {
	Version  string
	Venue    domain.Venue
	CachedAt time.Time
}

// venueCache holds recently read venue settings with a short TTL so quota
// and enablement changes propagate without a restart.
type venueCache struct {
	lru *expirable.LRU[string, *cachedVenueEntry]
}

func newVenueCache(size int, ttl time.Duration) *venueCache {
	return &venueCache{
		lru: expirable.NewLRU[string, *cachedVenueEntry](size, nil, ttl),
	}
}

// Get returns a copy so callers cannot mutate the cached entry.
func (c *venueCache) Get(venueID string) (*domain.Venue, bool) {
	entry, found := c.lru.Get(venueID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(venueID)
		return nil, false
	}
	v := entry.Venue
	return &v, true
}

func (c *venueCache) Set(v *domain.Venue) {
	c.lru.Add(v.ID, &cachedVenueEntry{
		Version:  CacheSchemaVersion,
		Venue:    *v,
		CachedAt: time.Now(),
	})
}

func (c *venueCache) Invalidate(venueID string) {
	c.lru.Remove(venueID)
}

func (c *venueCache) Len() int {
	return c.lru.Len()
}
