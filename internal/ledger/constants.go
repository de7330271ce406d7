package ledger

// Metadata keys attached to ledger transactions
const (
	MetaKeyVenueID     = "venue_id"
	MetaKeyPayoutClass = "payout_class"
	MetaKeyGameMode    = "game_mode"
	MetaKeySource      = "source"
)

// History limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

const (
	ErrMsgLockPlayerFailed     = "failed to lock player ledger"
	ErrMsgReadBalanceFailed    = "failed to read balance"
	ErrMsgAppendFailed         = "failed to append ledger transaction"
	ErrMsgBeginTxFailed        = "failed to begin ledger transaction"
	ErrMsgCommitFailed         = "failed to commit ledger transaction"
	ErrMsgListTransactionsFail = "failed to list ledger transactions"

	LogMsgDepositApplied = "Deposit applied"
)
