package domain

// RarityTier is the ordinal rarity classification of a symbol.
type RarityTier string

const (
	RarityCommon    RarityTier = "common"
	RarityUncommon  RarityTier = "uncommon"
	RarityRare      RarityTier = "rare"
	RarityEpic      RarityTier = "epic"
	RarityLegendary RarityTier = "legendary"
	RarityMythical  RarityTier = "mythical"
	RarityWild      RarityTier = "wild"
)

var rarityRanks = map[RarityTier]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityMythical:  5,
	RarityWild:      6,
}

// Valid reports whether r is a known tier.
func (r RarityTier) Valid() bool {
	_, ok := rarityRanks[r]
	return ok
}

// Rank orders tiers from common (0) upward. Unknown tiers rank -1.
func (r RarityTier) Rank() int {
	rank, ok := rarityRanks[r]
	if !ok {
		return -1
	}
	return rank
}

// Symbol is one entry of a player's resolved deck.
type Symbol struct {
	ID           string     `json:"id"`
	DisplayValue string     `json:"display_value"`
	Level        int        `json:"level"`
	Rarity       RarityTier `json:"rarity"`
	IsWild       bool       `json:"is_wild"`
}

// CompatibleWith reports whether two symbols can share a winning line.
func (s Symbol) CompatibleWith(other Symbol) bool {
	return s.IsWild || other.IsWild || s.ID == other.ID
}

// GridSize is the width and height of an outcome grid.
const GridSize = 3

// OutcomeGrid is a 3x3 matrix of symbols indexed [row][column].
type OutcomeGrid [GridSize][GridSize]Symbol

// Cell identifies one grid position.
type Cell struct {
	Row int
	Col int
}

// WinLine names one of the five paylines.
type WinLine string

const (
	LineTopRow       WinLine = "top_row"
	LineMiddleRow    WinLine = "middle_row"
	LineBottomRow    WinLine = "bottom_row"
	LineDiagonalTLBR WinLine = "diagonal_tlbr"
	LineDiagonalTRBL WinLine = "diagonal_trbl"
)

// WinLines is the fixed evaluation order. The first matching line wins.
var WinLines = []WinLine{
	LineTopRow,
	LineMiddleRow,
	LineBottomRow,
	LineDiagonalTLBR,
	LineDiagonalTRBL,
}

var lineCells = map[WinLine][GridSize]Cell{
	LineTopRow:       {{0, 0}, {0, 1}, {0, 2}},
	LineMiddleRow:    {{1, 0}, {1, 1}, {1, 2}},
	LineBottomRow:    {{2, 0}, {2, 1}, {2, 2}},
	LineDiagonalTLBR: {{0, 0}, {1, 1}, {2, 2}},
	LineDiagonalTRBL: {{0, 2}, {1, 1}, {2, 0}},
}

// Cells returns the positions covered by the line, left to right.
func (l WinLine) Cells() [GridSize]Cell {
	return lineCells[l]
}

// Center returns the middle position of the line.
func (l WinLine) Center() Cell {
	return lineCells[l][1]
}

// IsDiagonal reports whether the line is one of the two diagonals.
func (l WinLine) IsDiagonal() bool {
	return l == LineDiagonalTLBR || l == LineDiagonalTRBL
}

// Valid reports whether l is one of the five paylines.
func (l WinLine) Valid() bool {
	_, ok := lineCells[l]
	return ok
}

// Line returns the symbols along l.
func (g OutcomeGrid) Line(l WinLine) [GridSize]Symbol {
	var out [GridSize]Symbol
	for i, c := range l.Cells() {
		out[i] = g[c.Row][c.Col]
	}
	return out
}

// At returns the symbol at c.
func (g OutcomeGrid) At(c Cell) Symbol {
	return g[c.Row][c.Col]
}

// Set places s at c.
func (g *OutcomeGrid) Set(c Cell, s Symbol) {
	g[c.Row][c.Col] = s
}

// SymbolIDs flattens the grid row-major into symbol identifiers.
func (g OutcomeGrid) SymbolIDs() []string {
	ids := make([]string, 0, GridSize*GridSize)
	for _, row := range g {
		for _, s := range row {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
