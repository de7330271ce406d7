package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/limiter"
	"github.com/osse101/wagerengine/internal/wager"
)

// URL parameter names
const (
	URLParamVenueID = "venueID"
	URLParamPlayID  = "playID"
)

// ActionPlaceWager names the wager action in request logs
const ActionPlaceWager = "place wager"

// WagerHandler serves the player-facing wager endpoints
type WagerHandler struct {
	service wager.Service
	limiter limiter.Service
}

// NewWagerHandler creates a new wager handler
func NewWagerHandler(service wager.Service, limiterSvc limiter.Service) *WagerHandler {
	return &WagerHandler{
		service: service,
		limiter: limiterSvc,
	}
}

// PlaceWagerRequest is the body of a wager. The player comes from the session.
type PlaceWagerRequest struct {
	VenueID   string `json:"venue_id" validate:"required,identifier,max=128"`
	BetAmount int64  `json:"bet_amount" validate:"gt=0"`
}

// PlaysRemainingResponse reports the daily quota state at one venue
type PlaysRemainingResponse struct {
	VenueID        string `json:"venue_id"`
	CanPlay        bool   `json:"can_play"`
	PlaysRemaining int    `json:"plays_remaining"`
}

// HandlePlaceWager settles one play for the authenticated player
// @Summary Place a wager
// @Description Debits the bet, generates and settles an outcome, and returns the signed result
// @Tags wager
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlaceWagerRequest true "Wager"
// @Success 200 {object} domain.SettlementResult
// @Failure 400 {object} WagerErrorResponse
// @Failure 402 {object} WagerErrorResponse
// @Failure 403 {object} WagerErrorResponse
// @Failure 429 {object} WagerErrorResponse
// @Failure 500 {object} WagerErrorResponse
// @Router /api/v1/wagers [post]
func (h *WagerHandler) HandlePlaceWager(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	// A body that does not carry a well-formed positive bet is an invalid bet
	var req PlaceWagerRequest
	if err := decodeRequest(r, &req, ActionPlaceWager); err != nil {
		respondWagerError(w, r, fmt.Errorf("%w: %s", domain.ErrInvalidBet, ErrMsgInvalidRequest))
		return
	}
	if err := validateRequest(r, &req, ActionPlaceWager); err != nil {
		respondWagerError(w, r, fmt.Errorf("%w: %s", domain.ErrInvalidBet, ErrMsgInvalidRequestSummary))
		return
	}

	result, err := h.service.PlaceWager(r.Context(), domain.WagerRequest{
		PlayerID:  playerID,
		VenueID:   req.VenueID,
		BetAmount: req.BetAmount,
	})
	if err != nil {
		respondWagerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePlaysRemaining reports how many plays the player has left today
// @Summary Plays remaining today
// @Tags wager
// @Produce json
// @Security BearerAuth
// @Param venueID path string true "Venue ID"
// @Success 200 {object} PlaysRemainingResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/venues/{venueID}/plays-remaining [get]
func (h *WagerHandler) HandlePlaysRemaining(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	venueID := chi.URLParam(r, URLParamVenueID)

	canPlay, remaining, err := h.limiter.CanPlay(r.Context(), playerID, venueID)
	if err != nil {
		respondServiceError(w, r, LogMsgPlaysRemainingFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, PlaysRemainingResponse{
		VenueID:        venueID,
		CanPlay:        canPlay,
		PlaysRemaining: remaining,
	})
}
