package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/wagerengine/internal/outcome"
	"github.com/osse101/wagerengine/internal/payout"
	"github.com/osse101/wagerengine/internal/utils"
)

// WagerConfig is the game-mode file loaded from WAGER_CONFIG_PATH
type WagerConfig struct {
	Modes map[string]GameModeConfig `yaml:"modes"`
}

// GameModeConfig is the math of one named game mode
type GameModeConfig struct {
	MinBet         int64                `yaml:"min_bet"`
	MaxBet         int64                `yaml:"max_bet"`
	WinProbability float64              `yaml:"win_probability"`
	PatternWeights PatternWeightsConfig `yaml:"pattern_weights"`
	InverseLevelK  int                  `yaml:"inverse_level_k"`
	MaxRedraws     int                  `yaml:"max_redraws"`
	Payout         PayoutConfig         `yaml:"payout"`
}

// PatternWeightsConfig holds the relative weights of winning patterns
type PatternWeightsConfig struct {
	Horizontal int `yaml:"horizontal"`
	Diagonal   int `yaml:"diagonal"`
	Rarity     int `yaml:"rarity"`
	Wild       int `yaml:"wild"`
}

// PayoutConfig overrides the stock multiplier table. Omitted fields keep
// their defaults.
type PayoutConfig struct {
	JackpotMultiplier       int64            `yaml:"jackpot_multiplier"`
	TripleWildFactor        *decimal.Decimal `yaml:"triple_wild_factor"`
	MythicalFactor          *decimal.Decimal `yaml:"mythical_factor"`
	LegendaryLevelThreshold int              `yaml:"legendary_level_threshold"`
	LevelMultiplier         int64            `yaml:"level_multiplier"`
	WildBonus               *int64           `yaml:"wild_bonus"`
	DiagonalBonus           *int64           `yaml:"diagonal_bonus"`
	MaxPayoutMultiplier     *int64           `yaml:"max_payout_multiplier"`
}

// LoadWagerConfig reads and validates the game-mode file
func LoadWagerConfig(path string) (*WagerConfig, error) {
	var cfg WagerConfig
	if err := utils.LoadYAML(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadWagerConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every mode against the generator and payout rules
func (c *WagerConfig) Validate() error {
	if len(c.Modes) == 0 {
		return errors.New(ErrMsgNoGameModes)
	}
	for name, mode := range c.Modes {
		if mode.MinBet < 1 || mode.MaxBet < mode.MinBet {
			return fmt.Errorf(ErrFmtInvalidGameMode, name, fmt.Errorf(ErrFmtInvalidBetBounds, mode.MinBet, mode.MaxBet))
		}
		if err := mode.OutcomeConfig().Validate(); err != nil {
			return fmt.Errorf(ErrFmtInvalidGameMode, name, err)
		}
		if err := mode.PayoutConfig().Validate(); err != nil {
			return fmt.Errorf(ErrFmtInvalidGameMode, name, err)
		}
	}
	return nil
}

// OutcomeConfig converts the mode into generator settings
func (m GameModeConfig) OutcomeConfig() outcome.Config {
	return outcome.Config{
		WinProbability: m.WinProbability,
		PatternWeights: outcome.PatternWeights{
			Horizontal: m.PatternWeights.Horizontal,
			Diagonal:   m.PatternWeights.Diagonal,
			Rarity:     m.PatternWeights.Rarity,
			Wild:       m.PatternWeights.Wild,
		},
		InverseLevelK: m.InverseLevelK,
		MaxRedraws:    m.MaxRedraws,
	}
}

// PayoutConfig layers the mode's overrides on payout.DefaultConfig
func (m GameModeConfig) PayoutConfig() payout.Config {
	cfg := payout.DefaultConfig()
	p := m.Payout

	if p.JackpotMultiplier != 0 {
		cfg.JackpotMultiplier = p.JackpotMultiplier
	}
	if p.TripleWildFactor != nil {
		cfg.TripleWildFactor = *p.TripleWildFactor
	}
	if p.MythicalFactor != nil {
		cfg.MythicalFactor = *p.MythicalFactor
	}
	if p.LegendaryLevelThreshold != 0 {
		cfg.LegendaryLevelThreshold = p.LegendaryLevelThreshold
	}
	if p.LevelMultiplier != 0 {
		cfg.LevelMultiplier = p.LevelMultiplier
	}
	if p.WildBonus != nil {
		cfg.WildBonus = *p.WildBonus
	}
	if p.DiagonalBonus != nil {
		cfg.DiagonalBonus = *p.DiagonalBonus
	}
	if p.MaxPayoutMultiplier != nil {
		cfg.MaxPayoutMultiplier = *p.MaxPayoutMultiplier
	}
	return cfg
}
