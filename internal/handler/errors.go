package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/wagerengine/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgNotAuthenticated      = "Not authenticated"
	ErrMsgGenericServerError    = "Something went wrong"
)

// User-facing messages derived from domain errors
const (
	ErrMsgVenueNotFoundHTTP   = "Venue not found"
	ErrMsgPlayNotFoundHTTP    = "Play not found"
	ErrMsgInvalidPlayerHTTP   = "Invalid player id"
	ErrMsgInvalidAmountHTTP   = "Amount must be positive"
	ErrMsgInvalidVenueHTTP    = "Invalid venue settings"
	ErrMsgInvalidTimezoneHTTP = "Unknown time zone"
	ErrMsgUnknownModeHTTP     = "Unknown game mode"
)

// Log messages for handler operations
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeFailed         = "Failed to decode request"
	LogMsgValidationFailed     = "Request failed validation"
	LogMsgReadinessFailed      = "Readiness check failed"

	LogMsgBalanceFailed        = "Failed to read balance"
	LogMsgHistoryFailed        = "Failed to list ledger transactions"
	LogMsgDepositFailed        = "Failed to apply deposit"
	LogMsgPlaysRemainingFailed = "Failed to check plays remaining"
	LogMsgGetVenueFailed       = "Failed to get venue"
	LogMsgUpsertVenueFailed    = "Failed to update venue"
	LogMsgVerifyPlayFailed     = "Failed to verify play"
	LogMsgListPlaysFailed      = "Failed to list plays"
)

// mapServiceErrorToUserMessage converts service errors to an HTTP status and
// a message that is safe to show. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrVenueNotFound):
		return http.StatusNotFound, ErrMsgVenueNotFoundHTTP
	case errors.Is(err, domain.ErrPlayNotFound):
		return http.StatusNotFound, ErrMsgPlayNotFoundHTTP
	case errors.Is(err, domain.ErrInvalidPlayerID):
		return http.StatusBadRequest, ErrMsgInvalidPlayerHTTP
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountHTTP
	case errors.Is(err, domain.ErrInvalidVenueData):
		return http.StatusBadRequest, ErrMsgInvalidVenueHTTP
	case errors.Is(err, domain.ErrInvalidTimezone):
		return http.StatusBadRequest, ErrMsgInvalidTimezoneHTTP
	case errors.Is(err, domain.ErrUnknownGameMode):
		return http.StatusBadRequest, ErrMsgUnknownModeHTTP
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// statusForCode maps a wager error code onto an HTTP status
func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeInvalidBet:
		return http.StatusBadRequest
	case domain.CodeVenueNotEnabled:
		return http.StatusForbidden
	case domain.CodeQuotaExceeded:
		return http.StatusTooManyRequests
	case domain.CodeInsufficientFunds:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
