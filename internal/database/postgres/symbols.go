package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/domain"
)

// SymbolRepository reads the unlocked-symbol snapshot kept in sync with the
// inventory service
type SymbolRepository struct {
	db *pgxpool.Pool
}

// NewSymbolRepository creates a new SymbolRepository
func NewSymbolRepository(db *pgxpool.Pool) *SymbolRepository {
	return &SymbolRepository{db: db}
}

// UnlockedSymbols returns the raw rows for playerID. Validation and ordering
// for play happen in the resolver.
func (r *SymbolRepository) UnlockedSymbols(ctx context.Context, playerID string) ([]domain.Symbol, error) {
	rows, err := r.db.Query(ctx, sqlUnlockedSymbols, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSymbols, err)
	}
	defer rows.Close()

	symbols := make([]domain.Symbol, 0)
	for rows.Next() {
		var (
			s      domain.Symbol
			rarity string
		)
		if err := rows.Scan(&s.ID, &s.DisplayValue, &s.Level, &rarity, &s.IsWild); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSymbol, err)
		}
		s.Rarity = domain.RarityTier(rarity)
		symbols = append(symbols, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSymbols, err)
	}
	return symbols, nil
}
