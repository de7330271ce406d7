package venue

import "time"

// CacheSchemaVersion is bumped when the cached venue shape changes
const CacheSchemaVersion = "1"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Second
)

const (
	ErrMsgGetVenueFailed    = "failed to get venue"
	ErrMsgUpsertVenueFailed = "failed to save venue"

	LogMsgVenueUpdated = "Venue settings updated"
)
