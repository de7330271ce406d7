package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/venue"
)

// VenueHandler serves venue administration
type VenueHandler struct {
	service venue.Service
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(service venue.Service) *VenueHandler {
	return &VenueHandler{service: service}
}

// UpsertVenueRequest replaces the wagering settings of a venue.
// Pointers distinguish an explicit false or zero from an omitted field.
type UpsertVenueRequest struct {
	Name            string `json:"name" validate:"max=128"`
	WageringEnabled *bool  `json:"wagering_enabled" validate:"required"`
	DailyPlayQuota  *int   `json:"daily_play_quota" validate:"required,min=0"`
	Timezone        string `json:"timezone" validate:"required,timezone"`
	GameMode        string `json:"game_mode" validate:"required,identifier,max=64"`
}

// HandleGetVenue returns a venue's settings
// @Summary Get venue settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param venueID path string true "Venue ID"
// @Success 200 {object} domain.Venue
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/venues/{venueID} [get]
func (h *VenueHandler) HandleGetVenue(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.GetVenue(r.Context(), chi.URLParam(r, URLParamVenueID))
	if err != nil {
		respondServiceError(w, r, LogMsgGetVenueFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleUpsertVenue creates or replaces a venue's settings
// @Summary Update venue settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param venueID path string true "Venue ID"
// @Param request body UpsertVenueRequest true "Settings"
// @Success 200 {object} domain.Venue
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/venues/{venueID} [put]
func (h *VenueHandler) HandleUpsertVenue(w http.ResponseWriter, r *http.Request) {
	var req UpsertVenueRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert venue"); err != nil {
		return
	}

	v, err := h.service.UpsertVenue(r.Context(), &domain.Venue{
		ID:              chi.URLParam(r, URLParamVenueID),
		Name:            req.Name,
		WageringEnabled: *req.WageringEnabled,
		DailyPlayQuota:  *req.DailyPlayQuota,
		Timezone:        req.Timezone,
		GameMode:        req.GameMode,
	})
	if err != nil {
		respondServiceError(w, r, LogMsgUpsertVenueFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}
