package wager

import (
	"fmt"
	"sort"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/outcome"
	"github.com/osse101/wagerengine/internal/payout"
)

// OutcomeGenerator builds one grid from a resolved deck.
type OutcomeGenerator interface {
	Generate(symbols []domain.Symbol) (outcome.Outcome, error)
}

// PayoutEvaluator scores a grid.
type PayoutEvaluator interface {
	Evaluate(grid domain.OutcomeGrid, bet int64) payout.Result
}

// GameMode is one configured ruleset a venue can select.
type GameMode struct {
	Name       string
	MinBet     int64
	MaxBet     int64
	Generator  OutcomeGenerator
	Calculator PayoutEvaluator
}

// AcceptsBet reports whether bet lies within the mode's bounds.
func (m *GameMode) AcceptsBet(bet int64) bool {
	return bet >= m.MinBet && bet <= m.MaxBet
}

// Modes indexes game modes by name.
type Modes map[string]*GameMode

// HasMode reports whether name is configured.
func (m Modes) HasMode(name string) bool {
	_, ok := m[name]
	return ok
}

// Get returns the named mode or domain.ErrUnknownGameMode.
func (m Modes) Get(name string) (*GameMode, error) {
	mode, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownGameModeName, domain.ErrUnknownGameMode, name)
	}
	return mode, nil
}

// Names returns the configured mode names in sorted order.
func (m Modes) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
