package repository

import (
	"context"

	"github.com/osse101/wagerengine/internal/domain"
)

// Venue defines the interface for venue settings persistence
type Venue interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
	UpsertVenue(ctx context.Context, venue *domain.Venue) error
}

// Symbols reads the unlocked-symbol snapshot maintained by the inventory service
type Symbols interface {
	UnlockedSymbols(ctx context.Context, playerID string) ([]domain.Symbol, error)
}
