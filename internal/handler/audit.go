package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/wager"
)

// AuditHandler serves play verification and listings to operators
type AuditHandler struct {
	service wager.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service wager.Service) *AuditHandler {
	return &AuditHandler{service: service}
}

// VerifyPlayResponse is a verification with its overall verdict
type VerifyPlayResponse struct {
	domain.PlayVerification
	Verified bool `json:"verified"`
}

// PlaysResponse is a filtered play listing
type PlaysResponse struct {
	Plays []domain.PlayRecord `json:"plays"`
	Count int                 `json:"count"`
}

// HandleVerifyPlay checks a stored play for tampering
// @Summary Verify a play
// @Description Recomputes the signature and payout of a stored play and checks balance conservation
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param playID path string true "Play ID"
// @Success 200 {object} VerifyPlayResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/plays/{playID}/verify [get]
func (h *AuditHandler) HandleVerifyPlay(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.VerifyPlay(r.Context(), chi.URLParam(r, URLParamPlayID))
	if err != nil {
		respondServiceError(w, r, LogMsgVerifyPlayFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, VerifyPlayResponse{PlayVerification: *v, Verified: v.Verified()})
}

// HandleListPlays lists stored plays, newest first
// @Summary List plays
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param player_id query string false "Player ID"
// @Param venue_id query string false "Venue ID"
// @Param from query string false "Inclusive lower bound (RFC 3339)"
// @Param to query string false "Exclusive upper bound (RFC 3339)"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} PlaysResponse
// @Router /api/v1/admin/plays [get]
func (h *AuditHandler) HandleListPlays(w http.ResponseWriter, r *http.Request) {
	from, ok := GetTimeQueryParam(r, w, "from")
	if !ok {
		return
	}
	to, ok := GetTimeQueryParam(r, w, "to")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit", wager.DefaultPlayListLimit)
	if !ok {
		return
	}

	plays, err := h.service.ListPlays(r.Context(), domain.PlayFilter{
		PlayerID: GetOptionalQueryParam(r, "player_id", ""),
		VenueID:  GetOptionalQueryParam(r, "venue_id", ""),
		From:     from,
		To:       to,
		Limit:    limit,
	})
	if err != nil {
		respondServiceError(w, r, LogMsgListPlaysFailed, err)
		return
	}
	if plays == nil {
		plays = []domain.PlayRecord{}
	}

	respondJSON(w, http.StatusOK, PlaysResponse{Plays: plays, Count: len(plays)})
}
