package outcome

import (
	"errors"
	"fmt"
)

// Pattern is a category of winning grid.
type Pattern string

const (
	PatternHorizontal Pattern = "horizontal"
	PatternDiagonal   Pattern = "diagonal"
	PatternRarity     Pattern = "rarity"
	PatternWild       Pattern = "wild"
)

// Patterns lists categories in selection order.
var Patterns = []Pattern{PatternHorizontal, PatternDiagonal, PatternRarity, PatternWild}

// PatternWeights are relative selection weights. They need not sum to 100.
type PatternWeights struct {
	Horizontal int
	Diagonal   int
	Rarity     int
	Wild       int
}

// Of returns the weight of p.
func (w PatternWeights) Of(p Pattern) int {
	switch p {
	case PatternHorizontal:
		return w.Horizontal
	case PatternDiagonal:
		return w.Diagonal
	case PatternRarity:
		return w.Rarity
	case PatternWild:
		return w.Wild
	}
	return 0
}

// Config controls how grids are built for one game mode.
type Config struct {
	// WinProbability is the chance a play is decided as a win.
	WinProbability float64
	PatternWeights PatternWeights
	// InverseLevelK gives symbol weight max(1, K - level).
	InverseLevelK int
	// MaxRedraws bounds the self-consistency loop for each grid.
	MaxRedraws int
}

// DefaultConfig returns a horizontal-only configuration.
func DefaultConfig() Config {
	return Config{
		WinProbability: DefaultWinProbability,
		PatternWeights: PatternWeights{Horizontal: 60},
		InverseLevelK:  DefaultInverseLevelK,
		MaxRedraws:     DefaultMaxRedraws,
	}
}

// Validate checks probability bounds and weights.
func (c Config) Validate() error {
	if c.WinProbability < 0 || c.WinProbability > 1 {
		return fmt.Errorf(ErrFmtWinProbability, c.WinProbability)
	}
	total := 0
	for _, p := range Patterns {
		w := c.PatternWeights.Of(p)
		if w < 0 {
			return fmt.Errorf(ErrFmtNegativeWeight, p)
		}
		total += w
	}
	if total == 0 {
		return errors.New(ErrMsgNoPatternWeight)
	}
	if c.InverseLevelK < 1 {
		return errors.New(ErrMsgInverseLevelK)
	}
	if c.MaxRedraws < 1 {
		return errors.New(ErrMsgMaxRedraws)
	}
	return nil
}
