package payout

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Config holds the multipliers and bonuses of one game mode.
type Config struct {
	// JackpotMultiplier applies to legendary-or-higher base symbols and scales the special classes.
	JackpotMultiplier int64
	// TripleWildFactor scales the jackpot for a line of three wilds.
	TripleWildFactor decimal.Decimal
	// MythicalFactor scales the jackpot for a mythical base symbol.
	MythicalFactor decimal.Decimal
	// LegendaryLevelThreshold is the base level at which the jackpot multiplier replaces the level multiplier.
	LegendaryLevelThreshold int
	// LevelMultiplier is applied to the base symbol level below the threshold.
	LevelMultiplier int64
	// WildBonus is added per wild symbol in the winning line.
	WildBonus int64
	// DiagonalBonus is added when the winning line is a diagonal.
	DiagonalBonus int64
	// MaxPayoutMultiplier caps a payout at bet times this value. Zero disables the cap.
	MaxPayoutMultiplier int64
}

// DefaultConfig returns the stock multiplier table.
func DefaultConfig() Config {
	return Config{
		JackpotMultiplier:       DefaultJackpotMultiplier,
		TripleWildFactor:        decimal.NewFromInt(DefaultTripleWildFactor),
		MythicalFactor:          decimal.RequireFromString(DefaultMythicalFactor),
		LegendaryLevelThreshold: DefaultLegendaryLevelThreshold,
		LevelMultiplier:         DefaultLevelMultiplier,
		WildBonus:               DefaultWildBonus,
		DiagonalBonus:           DefaultDiagonalBonus,
	}
}

// Validate rejects tables that could produce negative or meaningless payouts.
func (c Config) Validate() error {
	switch {
	case c.JackpotMultiplier <= 0:
		return errors.New(ErrMsgJackpotMultiplier)
	case !c.TripleWildFactor.IsPositive():
		return errors.New(ErrMsgTripleWildFactor)
	case !c.MythicalFactor.IsPositive():
		return errors.New(ErrMsgMythicalFactor)
	case c.LegendaryLevelThreshold < 1:
		return errors.New(ErrMsgLegendaryThreshold)
	case c.LevelMultiplier <= 0:
		return errors.New(ErrMsgLevelMultiplier)
	case c.WildBonus < 0 || c.DiagonalBonus < 0:
		return errors.New(ErrMsgNegativeBonus)
	case c.MaxPayoutMultiplier < 0:
		return errors.New(ErrMsgNegativeCap)
	}
	return nil
}
