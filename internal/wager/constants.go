package wager

import "time"

// State is a step of the wager state machine.
type State string

const (
	StateValidating State = "validating"
	StateDebiting   State = "debiting"
	StateGenerating State = "generating"
	StateSettling   State = "settling"
	StateRecording  State = "recording"
	StateCommitted  State = "committed"
	StateFailed     State = "failed"
)

// DefaultTxTimeout bounds the settlement transaction.
const DefaultTxTimeout = 5 * time.Second

// Audit listing limits
const (
	DefaultPlayListLimit = 50
	MaxPlayListLimit     = 500
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgBeginTxFailed       = "failed to begin wager transaction"
	ErrMsgResolveSymbols      = "failed to resolve symbols"
	ErrMsgGenerateOutcome     = "failed to generate outcome"
	ErrMsgPlayDate            = "failed to determine play date"
	ErrMsgInsertPlayFailed    = "failed to insert play record"
	ErrMsgCommitFailed        = "failed to commit wager transaction"
	ErrMsgConservationBroken  = "conservation check failed"
	ErrMsgQuotaCheckFailed    = "failed to check daily quota"
	ErrMsgLoadPlayFailed      = "failed to load play"
	ErrMsgListPlaysFailed     = "failed to list plays"
	ErrMsgUnknownGameModeName = "game mode %q is not configured"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgStateChanged    = "Wager state changed"
	LogMsgWagerRejected   = "Wager rejected"
	LogMsgWagerRolledBack = "Wager rolled back"
	LogMsgWagerSettled    = "Wager settled"
	LogMsgAuditFailed     = "Play failed audit"
)

// Ledger metadata keys
const (
	MetaKeyVenueID     = "venue_id"
	MetaKeyGameMode    = "game_mode"
	MetaKeyPayoutClass = "payout_class"
	MetaKeyWinningLine = "winning_line"
)
