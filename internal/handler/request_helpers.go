package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
// Example usage:
//
//	var req DepositRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := decodeRequest(r, req, actionName); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := validateRequest(r, req, actionName); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// decodeRequest decodes the JSON body into req without writing a response.
func decodeRequest(r *http.Request, req interface{}, actionName string) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		return err
	}
	return nil
}

// validateRequest checks the validate tags of req without writing a response.
func validateRequest(r *http.Request, req interface{}, actionName string) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		return err
	}
	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntQueryParam parses an optional integer query parameter. On a malformed
// value it writes a 400 response and returns false.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return n, true
}

// GetTimeQueryParam parses an optional RFC 3339 timestamp. A missing value
// yields nil.
func GetTimeQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (*time.Time, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return nil, false
	}
	return &t, true
}

// requirePlayer returns the authenticated player id or writes 401.
func requirePlayer(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgNotAuthenticated)
		return "", false
	}
	return playerID, true
}
