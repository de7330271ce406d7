package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/wagerengine/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"wrapped venue not found", fmt.Errorf("failed to get venue: %w", domain.ErrVenueNotFound), http.StatusNotFound, ErrMsgVenueNotFoundHTTP},
		{"play not found", domain.ErrPlayNotFound, http.StatusNotFound, ErrMsgPlayNotFoundHTTP},
		{"invalid player", domain.ErrInvalidPlayerID, http.StatusBadRequest, ErrMsgInvalidPlayerHTTP},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountHTTP},
		{"invalid venue", domain.ErrInvalidVenueData, http.StatusBadRequest, ErrMsgInvalidVenueHTTP},
		{"invalid timezone", fmt.Errorf("%w: Mars/Olympus", domain.ErrInvalidTimezone), http.StatusBadRequest, ErrMsgInvalidTimezoneHTTP},
		{"unknown mode", domain.ErrUnknownGameMode, http.StatusBadRequest, ErrMsgUnknownModeHTTP},
		{"internal detail hidden", errors.New("dial tcp 10.0.0.5:5432: refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusForCode(domain.CodeInvalidBet))
	assert.Equal(t, http.StatusForbidden, statusForCode(domain.CodeVenueNotEnabled))
	assert.Equal(t, http.StatusTooManyRequests, statusForCode(domain.CodeQuotaExceeded))
	assert.Equal(t, http.StatusPaymentRequired, statusForCode(domain.CodeInsufficientFunds))
	assert.Equal(t, http.StatusInternalServerError, statusForCode(domain.CodeTransactionFailed))
	assert.Equal(t, http.StatusInternalServerError, statusForCode("Unheard"))
}

func TestLocalizedMessage(t *testing.T) {
	tests := []struct {
		acceptLanguage string
		expected       string
	}{
		{"", "You have used all of today's plays at this venue."},
		{"en-GB", "You have used all of today's plays at this venue."},
		{"de-DE,de;q=0.9", "Du hast alle heutigen Spiele an diesem Ort verbraucht."},
		{"es", "Ya usaste todas las jugadas de hoy en este local."},
		{"ja", "You have used all of today's plays at this venue."},
	}

	for _, tt := range tests {
		t.Run(tt.acceptLanguage, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/wagers", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(HeaderAcceptLanguage, tt.acceptLanguage)
			}
			assert.Equal(t, tt.expected, localizedMessage(req, domain.CodeQuotaExceeded))
		})
	}
}

func TestWagerMessages_CoverEveryCode(t *testing.T) {
	codes := []domain.ErrorCode{
		domain.CodeInvalidBet,
		domain.CodeVenueNotEnabled,
		domain.CodeQuotaExceeded,
		domain.CodeInsufficientFunds,
		domain.CodeTransactionFailed,
	}
	for _, code := range codes {
		assert.Len(t, wagerMessages[code], len(supportedLanguages), "code %s", code)
	}
}
