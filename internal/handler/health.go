package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/logger"
)

// ReadinessTimeout bounds the database ping of /readyz
const ReadinessTimeout = 2 * time.Second

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports whether the database accepts connections. Wagers
// cannot settle without it.
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database connected)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: HealthMsgDatabaseDown,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
