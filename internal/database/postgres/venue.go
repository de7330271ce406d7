package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/domain"
)

// VenueRepository implements repository.Venue for PostgreSQL
type VenueRepository struct {
	db *pgxpool.Pool
}

// NewVenueRepository creates a new VenueRepository
func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetVenue returns domain.ErrVenueNotFound for unknown venues
func (r *VenueRepository) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	var v domain.Venue
	err := r.db.QueryRow(ctx, sqlGetVenue, venueID).Scan(
		&v.ID,
		&v.Name,
		&v.WageringEnabled,
		&v.DailyPlayQuota,
		&v.Timezone,
		&v.GameMode,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetVenue, err)
	}
	return &v, nil
}

// UpsertVenue inserts or replaces the venue settings and stamps UpdatedAt
func (r *VenueRepository) UpsertVenue(ctx context.Context, venue *domain.Venue) error {
	err := r.db.QueryRow(ctx, sqlUpsertVenue,
		venue.ID,
		venue.Name,
		venue.WageringEnabled,
		venue.DailyPlayQuota,
		venue.Timezone,
		venue.GameMode,
	).Scan(&venue.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertVenue, err)
	}
	return nil
}
