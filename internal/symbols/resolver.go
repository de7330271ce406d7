package symbols

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
)

// InventoryProvider supplies the raw unlocked-symbol list of a player.
type InventoryProvider interface {
	UnlockedSymbols(ctx context.Context, playerID string) ([]domain.Symbol, error)
}

// Resolver returns the ordered deck used for outcome generation.
type Resolver interface {
	Resolve(ctx context.Context, playerID string) ([]domain.Symbol, error)
}

type resolver struct {
	inventory InventoryProvider
}

// NewResolver creates a resolver backed by inventory.
func NewResolver(inventory InventoryProvider) Resolver {
	return &resolver{inventory: inventory}
}

// Resolve filters malformed entries, removes duplicates, and orders the deck
// by level then identifier. Decks that cannot support both a winning and a
// losing grid are replaced by the fallback deck.
func (r *resolver) Resolve(ctx context.Context, playerID string) ([]domain.Symbol, error) {
	raw, err := r.inventory.UnlockedSymbols(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSymbolsFailed, err)
	}

	deck := Normalize(raw)
	if !Playable(deck) {
		logger.FromContext(ctx).Debug(LogMsgFallbackDeck, "player_id", playerID, "valid_symbols", len(deck))
		return FallbackDeck(), nil
	}
	return deck, nil
}

// Normalize drops invalid and duplicate symbols and sorts the rest.
func Normalize(raw []domain.Symbol) []domain.Symbol {
	seen := make(map[string]bool, len(raw))
	deck := make([]domain.Symbol, 0, len(raw))
	for _, s := range raw {
		if !valid(s) || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		if s.Rarity == domain.RarityWild {
			s.IsWild = true
		}
		deck = append(deck, s)
	}

	sort.SliceStable(deck, func(i, j int) bool {
		if deck[i].Level != deck[j].Level {
			return deck[i].Level < deck[j].Level
		}
		return deck[i].ID < deck[j].ID
	})
	return deck
}

// Playable reports whether a normalized deck has enough entries and at least
// two plain symbols.
func Playable(deck []domain.Symbol) bool {
	if len(deck) < MinDeckSize {
		return false
	}
	plain := 0
	for _, s := range deck {
		if !s.IsWild {
			plain++
		}
	}
	return plain >= MinPlainSymbols
}

// FallbackDeck is three common symbols, one of them wild.
func FallbackDeck() []domain.Symbol {
	return []domain.Symbol{
		{ID: FallbackCherryID, DisplayValue: FallbackCherryDisplay, Level: 1, Rarity: domain.RarityCommon},
		{ID: FallbackLemonID, DisplayValue: FallbackLemonDisplay, Level: 1, Rarity: domain.RarityCommon},
		{ID: FallbackWildID, DisplayValue: FallbackWildDisplay, Level: 1, Rarity: domain.RarityCommon, IsWild: true},
	}
}

func valid(s domain.Symbol) bool {
	return s.ID != "" && s.Level >= 1 && s.Rarity.Valid()
}
