package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WagerErrorResponse is the only failure shape of the wager endpoint
type WagerErrorResponse struct {
	ErrorCode domain.ErrorCode `json:"error_code"`
	Message   string           `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so encoding failures can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it onto a status and safe message
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action, "error", err)
	} else {
		log.Warn(action, "error", err)
	}
	respondError(w, status, msg)
}

// respondWagerError writes {error_code, message} with a message in the
// caller's preferred language.
func respondWagerError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCodeOf(err)
	respondJSON(w, statusForCode(code), WagerErrorResponse{
		ErrorCode: code,
		Message:   localizedMessage(r, code),
	})
}
