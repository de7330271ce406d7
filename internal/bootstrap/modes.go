package bootstrap

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/outcome"
	"github.com/osse101/wagerengine/internal/payout"
	"github.com/osse101/wagerengine/internal/wager"
)

// LoadGameModes reads the game-mode file at path and builds the runtime modes
func LoadGameModes(path string) (wager.Modes, error) {
	cfg, err := config.LoadWagerConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGameModes, err)
	}
	modes, err := BuildModes(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgGameModesLoaded, "modes", modes.Names())
	return modes, nil
}

// BuildModes pairs each configured mode with its generator and payout table
func BuildModes(cfg *config.WagerConfig) (wager.Modes, error) {
	names := make([]string, 0, len(cfg.Modes))
	for name := range cfg.Modes {
		names = append(names, name)
	}
	sort.Strings(names)

	modes := make(wager.Modes, len(names))
	for _, name := range names {
		m := cfg.Modes[name]
		calc := payout.NewCalculator(m.PayoutConfig())
		gen, err := outcome.NewGenerator(m.OutcomeConfig(), calc)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtFailedBuildMode, name, err)
		}
		modes[name] = &wager.GameMode{
			Name:       name,
			MinBet:     m.MinBet,
			MaxBet:     m.MaxBet,
			Generator:  gen,
			Calculator: calc,
		}
	}
	return modes, nil
}
