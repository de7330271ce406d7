package payout

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/wagerengine/internal/domain"
)

// Result is the settlement fragment produced for one grid and bet.
type Result struct {
	PayoutAmount int64
	Class        domain.PayoutClass
	WinningLine  *domain.WinLine
	Multiplier   decimal.Decimal
}

// Won reports whether any line matched.
func (r Result) Won() bool {
	return r.WinningLine != nil
}

// Calculator evaluates grids against a fixed multiplier table.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator for cfg.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config returns the multiplier table in use.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Evaluate scans the paylines in fixed order and settles the first match.
func (c *Calculator) Evaluate(grid domain.OutcomeGrid, bet int64) Result {
	for _, line := range domain.WinLines {
		if res, ok := c.EvaluateLine(grid, line, bet); ok {
			return res
		}
	}
	return Result{Class: domain.PayoutClassLoss, Multiplier: decimal.Zero}
}

// EvaluateLine settles a single line. The boolean is false when the line does not match.
func (c *Calculator) EvaluateLine(grid domain.OutcomeGrid, line domain.WinLine, bet int64) (Result, bool) {
	cells := grid.Line(line)
	if !LineMatches(cells) {
		return Result{}, false
	}

	class, multiplier := c.classify(line, cells)
	winning := line
	return Result{
		PayoutAmount: c.apply(bet, multiplier),
		Class:        class,
		WinningLine:  &winning,
		Multiplier:   multiplier,
	}, true
}

// LineMatches reports whether every pair of symbols in the line is compatible.
func LineMatches(cells [domain.GridSize]domain.Symbol) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !cells[i].CompatibleWith(cells[j]) {
				return false
			}
		}
	}
	return true
}

// BaseSymbol returns the first non-wild symbol of the line and the number of wilds.
// ok is false when all three symbols are wild.
func BaseSymbol(cells [domain.GridSize]domain.Symbol) (base domain.Symbol, wilds int, ok bool) {
	for _, s := range cells {
		if s.IsWild {
			wilds++
			continue
		}
		if !ok {
			base = s
			ok = true
		}
	}
	return base, wilds, ok
}

func (c *Calculator) classify(line domain.WinLine, cells [domain.GridSize]domain.Symbol) (domain.PayoutClass, decimal.Decimal) {
	jackpot := decimal.NewFromInt(c.cfg.JackpotMultiplier)

	base, wilds, ok := BaseSymbol(cells)
	if !ok {
		return domain.PayoutClassTripleWild, jackpot.Mul(c.cfg.TripleWildFactor)
	}
	if base.Rarity == domain.RarityMythical {
		return domain.PayoutClassMythical, jackpot.Mul(c.cfg.MythicalFactor)
	}

	var multiplier int64
	if base.Level >= c.cfg.LegendaryLevelThreshold {
		multiplier = c.cfg.JackpotMultiplier
	} else {
		multiplier = int64(base.Level) * c.cfg.LevelMultiplier
	}
	multiplier += int64(wilds) * c.cfg.WildBonus
	if line.IsDiagonal() {
		multiplier += c.cfg.DiagonalBonus
	}
	return domain.PayoutClassLineWin, decimal.NewFromInt(multiplier)
}

// apply multiplies the bet, rounding fractional coins down, and enforces the cap.
func (c *Calculator) apply(bet int64, multiplier decimal.Decimal) int64 {
	amount := decimal.NewFromInt(bet).Mul(multiplier).Floor().IntPart()
	if c.cfg.MaxPayoutMultiplier > 0 {
		if limit := bet * c.cfg.MaxPayoutMultiplier; amount > limit {
			amount = limit
		}
	}
	if amount < 0 {
		return 0
	}
	return amount
}
