package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wager validation errors
	ErrMsgInvalidBet       = "invalid bet amount"
	ErrMsgVenueNotEnabled  = "venue is not enabled for wagering"
	ErrMsgVenueNotFound    = "venue not found"
	ErrMsgUnknownGameMode  = "unknown game mode"
	ErrMsgQuotaExceeded    = "daily play quota exceeded"
	ErrMsgInvalidPlayerID  = "invalid player id"
	ErrMsgInvalidAmount    = "amount must be positive"
	ErrMsgInvalidTimezone  = "invalid venue timezone"
	ErrMsgInvalidVenueData = "invalid venue settings"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Transaction errors
	ErrMsgTransactionFailed = "transaction failed"
	ErrMsgTxClosed          = "tx is closed"

	// Audit errors
	ErrMsgPlayNotFound = "play not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidBet       = errors.New(ErrMsgInvalidBet)
	ErrVenueNotEnabled  = errors.New(ErrMsgVenueNotEnabled)
	ErrVenueNotFound    = errors.New(ErrMsgVenueNotFound)
	ErrUnknownGameMode  = errors.New(ErrMsgUnknownGameMode)
	ErrQuotaExceeded    = errors.New(ErrMsgQuotaExceeded)
	ErrInvalidPlayerID  = errors.New(ErrMsgInvalidPlayerID)
	ErrInvalidAmount    = errors.New(ErrMsgInvalidAmount)
	ErrInvalidTimezone  = errors.New(ErrMsgInvalidTimezone)
	ErrInvalidVenueData = errors.New(ErrMsgInvalidVenueData)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrTransactionFailed = errors.New(ErrMsgTransactionFailed)

	ErrPlayNotFound = errors.New(ErrMsgPlayNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// ErrorCode is the stable machine-readable code reported to wager callers.
type ErrorCode string

const (
	CodeInvalidBet        ErrorCode = "InvalidBet"
	CodeVenueNotEnabled   ErrorCode = "VenueNotEnabled"
	CodeQuotaExceeded     ErrorCode = "QuotaExceeded"
	CodeInsufficientFunds ErrorCode = "InsufficientFunds"
	CodeTransactionFailed ErrorCode = "TransactionFailed"
)

// ErrorCodeOf maps an error from the wager flow onto its stable code.
// Anything unrecognised is reported as a transaction failure.
func ErrorCodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidBet):
		return CodeInvalidBet
	case errors.Is(err, ErrVenueNotEnabled), errors.Is(err, ErrVenueNotFound), errors.Is(err, ErrUnknownGameMode):
		return CodeVenueNotEnabled
	case errors.Is(err, ErrQuotaExceeded):
		return CodeQuotaExceeded
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	default:
		return CodeTransactionFailed
	}
}
