package limiter

// =============================================================================
// Quota Constants
// =============================================================================

const (
	// DevModeQuota replaces venue quotas when DevMode is on
	DevModeQuota = 1_000_000
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgLoadVenueFailed is returned when venue settings cannot be read
	ErrMsgLoadVenueFailed = "failed to load venue: %w"

	// ErrMsgReadCounterFailed is returned when the daily counter read fails
	ErrMsgReadCounterFailed = "failed to read daily play counter: %w"

	// ErrMsgRecordPlayFailed is returned when the guarded increment fails
	ErrMsgRecordPlayFailed = "failed to record play: %w"

	// ErrFmtQuotaReached formats QuotaReached.Error()
	ErrFmtQuotaReached = "daily play quota of %d reached at venue %s"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing daily play quota"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent request consumed last play"
	LogMsgPlayRecorded          = "Daily play recorded"
)
