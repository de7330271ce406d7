package outcome

import (
	crand "crypto/rand"
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/payout"
)

// Evaluator scores grids. *payout.Calculator satisfies it.
type Evaluator interface {
	Evaluate(grid domain.OutcomeGrid, bet int64) payout.Result
	EvaluateLine(grid domain.OutcomeGrid, line domain.WinLine, bet int64) (payout.Result, bool)
}

// Outcome is a generated grid together with the decision that shaped it.
type Outcome struct {
	Grid    domain.OutcomeGrid
	Won     bool
	Pattern Pattern
	Line    *domain.WinLine
}

// Generator builds grids by deciding win or loss first and then constructing
// a grid consistent with that decision. It is safe for concurrent use; every
// call draws from its own random source.
type Generator struct {
	cfg     Config
	eval    Evaluator
	newRand func() *rand.Rand
}

// Option customises a Generator.
type Option func(*Generator)

// WithRandSource replaces the per-call random source factory. Intended for tests.
func WithRandSource(fn func() *rand.Rand) Option {
	return func(g *Generator) {
		g.newRand = fn
	}
}

// NewGenerator validates cfg and returns a generator scoring grids with eval.
func NewGenerator(cfg Config, eval Evaluator, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:     cfg,
		eval:    eval,
		newRand: newSecureRand,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// newSecureRand seeds a ChaCha8 stream from the operating system.
func newSecureRand() *rand.Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Generate produces one grid from the resolved deck.
func (g *Generator) Generate(symbols []domain.Symbol) (Outcome, error) {
	d, err := newDeck(symbols)
	if err != nil {
		return Outcome{}, err
	}

	r := g.newRand()
	if r.Float64() < g.cfg.WinProbability {
		return g.winning(r, d), nil
	}
	return Outcome{Grid: g.losing(r, d)}, nil
}

// deck splits the resolved symbols by role.
type deck struct {
	all   []domain.Symbol
	plain []domain.Symbol
	wilds []domain.Symbol
}

func newDeck(symbols []domain.Symbol) (*deck, error) {
	d := &deck{all: symbols}
	seen := make(map[string]bool)
	for _, s := range symbols {
		if s.IsWild {
			d.wilds = append(d.wilds, s)
			continue
		}
		d.plain = append(d.plain, s)
		seen[s.ID] = true
	}
	if len(seen) < 2 {
		return nil, errors.New(ErrMsgDeckTooSmall)
	}
	return d, nil
}

// ---- Winning grids ----

func (g *Generator) winning(r *rand.Rand, d *deck) Outcome {
	pattern := g.pickPattern(r, d)
	line := pickLine(r, pattern)
	cells := g.fillLine(r, pattern, d)

	var grid domain.OutcomeGrid
	fixed := make(map[domain.Cell]bool, domain.GridSize)
	for i, c := range line.Cells() {
		grid.Set(c, cells[i])
		fixed[c] = true
	}
	free := freeCells(fixed)
	for _, c := range free {
		grid.Set(c, pickUniform(r, d.all))
	}

	intended, _ := g.eval.EvaluateLine(grid, line, probeBet)

	for attempt := 0; attempt < g.cfg.MaxRedraws; attempt++ {
		offending, ok := g.conflict(grid, line, intended)
		if !ok {
			return Outcome{Grid: grid, Won: true, Pattern: pattern, Line: &line}
		}
		for _, c := range offending.Cells() {
			if !fixed[c] {
				grid.Set(c, pickUniform(r, d.all))
			}
		}
	}
	if _, ok := g.conflict(grid, line, intended); !ok {
		return Outcome{Grid: grid, Won: true, Pattern: pattern, Line: &line}
	}

	slog.Default().Warn(LogMsgRedrawsExhausted, "won", true, "pattern", pattern)
	grid = g.settleFreeCells(grid, line, intended, free, d)
	return Outcome{Grid: grid, Won: true, Pattern: pattern, Line: &line}
}

// conflict returns a line that would override the intended one, either by
// preceding it in evaluation order or by paying more.
func (g *Generator) conflict(grid domain.OutcomeGrid, intended domain.WinLine, want payout.Result) (domain.WinLine, bool) {
	before := true
	for _, line := range domain.WinLines {
		if line == intended {
			before = false
			continue
		}
		res, ok := g.eval.EvaluateLine(grid, line, probeBet)
		if !ok {
			continue
		}
		if before || res.PayoutAmount > want.PayoutAmount {
			return line, true
		}
	}
	return "", false
}

// settleFreeCells searches layouts of the free cells over a handful of plain
// symbols in deck order and keeps the first consistent one.
func (g *Generator) settleFreeCells(grid domain.OutcomeGrid, line domain.WinLine, want payout.Result, free []domain.Cell, d *deck) domain.OutcomeGrid {
	candidates := distinctPlain(d, fallbackCandidates)
	n := len(candidates)

	total := 1
	for range free {
		total *= n
	}
	for combo := 0; combo < total; combo++ {
		x := combo
		for _, c := range free {
			grid.Set(c, candidates[x%n])
			x /= n
		}
		if _, ok := g.conflict(grid, line, want); !ok {
			return grid
		}
	}
	return grid
}

func (g *Generator) pickPattern(r *rand.Rand, d *deck) Pattern {
	weights := make([]int, len(Patterns))
	total := 0
	for i, p := range Patterns {
		if p == PatternWild && len(d.wilds) == 0 {
			continue
		}
		weights[i] = g.cfg.PatternWeights.Of(p)
		total += weights[i]
	}
	if total == 0 {
		return PatternHorizontal
	}

	n := r.IntN(total)
	for i, w := range weights {
		n -= w
		if n < 0 {
			return Patterns[i]
		}
	}
	return PatternHorizontal
}

var (
	rowLines      = []domain.WinLine{domain.LineTopRow, domain.LineMiddleRow, domain.LineBottomRow}
	diagonalLines = []domain.WinLine{domain.LineDiagonalTLBR, domain.LineDiagonalTRBL}
)

func pickLine(r *rand.Rand, p Pattern) domain.WinLine {
	switch p {
	case PatternHorizontal:
		return rowLines[r.IntN(len(rowLines))]
	case PatternDiagonal:
		return diagonalLines[r.IntN(len(diagonalLines))]
	default:
		return domain.WinLines[r.IntN(len(domain.WinLines))]
	}
}

func (g *Generator) fillLine(r *rand.Rand, p Pattern, d *deck) [domain.GridSize]domain.Symbol {
	var cells [domain.GridSize]domain.Symbol

	switch p {
	case PatternRarity:
		best := highestRarity(d.plain)
		for i := range cells {
			cells[i] = best
		}
	case PatternWild:
		base := g.weightedPick(r, d.plain)
		for i := range cells {
			cells[i] = base
		}
		// Three wilds leave no base symbol and pay as a triple wild.
		wildCount := 1 + r.IntN(domain.GridSize)
		for _, pos := range r.Perm(domain.GridSize)[:wildCount] {
			cells[pos] = pickUniform(r, d.wilds)
		}
	default:
		s := g.weightedPick(r, d.plain)
		for i := range cells {
			cells[i] = s
		}
	}
	return cells
}

// ---- Losing grids ----

func (g *Generator) losing(r *rand.Rand, d *deck) domain.OutcomeGrid {
	var grid domain.OutcomeGrid
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			grid[row][col] = pickUniform(r, d.all)
		}
	}

	for attempt := 0; attempt < g.cfg.MaxRedraws; attempt++ {
		line, ok := firstMatch(grid)
		if !ok {
			return grid
		}
		breakLine(r, &grid, line, d)
	}
	if _, ok := firstMatch(grid); !ok {
		return grid
	}

	slog.Default().Warn(LogMsgRedrawsExhausted, "won", false)
	return fixedLosingGrid(d)
}

// breakLine redraws the center of a matching line with a plain symbol
// incompatible with its ends. Two wild ends are first replaced by a plain symbol.
func breakLine(r *rand.Rand, grid *domain.OutcomeGrid, line domain.WinLine, d *deck) {
	cells := line.Cells()
	first, last := grid.At(cells[0]), grid.At(cells[2])
	if first.IsWild && last.IsWild {
		// wild, plain, wild matches whatever the center holds, so an end has to go
		first = pickUniform(r, d.plain)
		grid.Set(cells[0], first)
	}

	candidates := make([]domain.Symbol, 0, len(d.plain))
	for _, s := range d.plain {
		if (!first.IsWild && s.ID == first.ID) || (!last.IsWild && s.ID == last.ID) {
			continue
		}
		candidates = append(candidates, s)
	}
	if len(candidates) == 0 {
		return
	}
	grid.Set(line.Center(), pickUniform(r, candidates))
}

// fixedLosingGrid lays out two plain symbols so that no payline matches.
func fixedLosingGrid(d *deck) domain.OutcomeGrid {
	c := distinctPlain(d, 2)
	a, b := c[0], c[1]
	return domain.OutcomeGrid{
		{a, a, b},
		{b, b, a},
		{a, a, b},
	}
}

func firstMatch(grid domain.OutcomeGrid) (domain.WinLine, bool) {
	for _, line := range domain.WinLines {
		if payout.LineMatches(grid.Line(line)) {
			return line, true
		}
	}
	return "", false
}

// ---- Symbol selection ----

// weightedPick favours low-level symbols with weight max(1, K - level).
func (g *Generator) weightedPick(r *rand.Rand, candidates []domain.Symbol) domain.Symbol {
	total := 0
	for _, s := range candidates {
		total += g.weight(s)
	}
	n := r.IntN(total)
	for _, s := range candidates {
		n -= g.weight(s)
		if n < 0 {
			return s
		}
	}
	return candidates[len(candidates)-1]
}

func (g *Generator) weight(s domain.Symbol) int {
	return max(1, g.cfg.InverseLevelK-s.Level)
}

func pickUniform(r *rand.Rand, candidates []domain.Symbol) domain.Symbol {
	return candidates[r.IntN(len(candidates))]
}

// highestRarity returns the rarest plain symbol, preferring higher level and then deck order.
func highestRarity(plain []domain.Symbol) domain.Symbol {
	best := plain[0]
	for _, s := range plain[1:] {
		if s.Rarity.Rank() > best.Rarity.Rank() ||
			(s.Rarity.Rank() == best.Rarity.Rank() && s.Level > best.Level) {
			best = s
		}
	}
	return best
}

func distinctPlain(d *deck, limit int) []domain.Symbol {
	out := make([]domain.Symbol, 0, limit)
	seen := make(map[string]bool)
	for _, s := range d.plain {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func freeCells(fixed map[domain.Cell]bool) []domain.Cell {
	free := make([]domain.Cell, 0, domain.GridSize*domain.GridSize-len(fixed))
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			c := domain.Cell{Row: row, Col: col}
			if !fixed[c] {
				free = append(free, c)
			}
		}
	}
	return free
}
