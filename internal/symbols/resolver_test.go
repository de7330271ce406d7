package symbols

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wagerengine/internal/domain"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) UnlockedSymbols(ctx context.Context, playerID string) ([]domain.Symbol, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Symbol), args.Error(1)
}

func TestResolve(t *testing.T) {
	bell := domain.Symbol{ID: "bell", Level: 3, Rarity: domain.RarityRare}
	apple := domain.Symbol{ID: "apple", Level: 1, Rarity: domain.RarityCommon}
	berry := domain.Symbol{ID: "berry", Level: 1, Rarity: domain.RarityCommon}
	joker := domain.Symbol{ID: "joker", Level: 2, Rarity: domain.RarityWild}

	tests := []struct {
		name     string
		raw      []domain.Symbol
		expected []domain.Symbol
	}{
		{
			name:     "sorted by level then id",
			raw:      []domain.Symbol{bell, berry, joker, apple},
			expected: []domain.Symbol{apple, berry, {ID: "joker", Level: 2, Rarity: domain.RarityWild, IsWild: true}, bell},
		},
		{
			name:     "fewer than three entries uses fallback",
			raw:      []domain.Symbol{apple, bell},
			expected: FallbackDeck(),
		},
		{
			name:     "empty inventory uses fallback",
			raw:      []domain.Symbol{},
			expected: FallbackDeck(),
		},
		{
			name: "malformed entries dropped before size check",
			raw: []domain.Symbol{
				apple,
				bell,
				{ID: "", Level: 1, Rarity: domain.RarityCommon},
				{ID: "broken", Level: 0, Rarity: domain.RarityCommon},
				{ID: "odd", Level: 2, Rarity: "shiny"},
			},
			expected: FallbackDeck(),
		},
		{
			name:     "duplicates collapse",
			raw:      []domain.Symbol{apple, apple, bell, berry},
			expected: []domain.Symbol{apple, berry, bell},
		},
		{
			name:     "only one plain symbol uses fallback",
			raw:      []domain.Symbol{apple, joker, {ID: "joker2", Level: 1, Rarity: domain.RarityWild}},
			expected: FallbackDeck(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := new(MockInventory)
			inv.On("UnlockedSymbols", mock.Anything, "player-1").Return(tt.raw, nil)

			deck, err := NewResolver(inv).Resolve(context.Background(), "player-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, deck)
			inv.AssertExpectations(t)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	raw := []domain.Symbol{
		{ID: "c", Level: 2, Rarity: domain.RarityUncommon},
		{ID: "a", Level: 2, Rarity: domain.RarityUncommon},
		{ID: "b", Level: 1, Rarity: domain.RarityCommon},
	}
	reversed := []domain.Symbol{raw[2], raw[1], raw[0]}

	inv := new(MockInventory)
	inv.On("UnlockedSymbols", mock.Anything, "p1").Return(raw, nil)
	inv.On("UnlockedSymbols", mock.Anything, "p2").Return(reversed, nil)
	r := NewResolver(inv)

	first, err := r.Resolve(context.Background(), "p1")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "p2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"b", "a", "c"}, []string{first[0].ID, first[1].ID, first[2].ID})
}

func TestResolve_ProviderError(t *testing.T) {
	inv := new(MockInventory)
	inv.On("UnlockedSymbols", mock.Anything, "player-1").Return(nil, errors.New("connection reset"))

	_, err := NewResolver(inv).Resolve(context.Background(), "player-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadSymbolsFailed)
}

func TestFallbackDeck(t *testing.T) {
	deck := FallbackDeck()
	require.Len(t, deck, 3)

	wilds := 0
	for _, s := range deck {
		assert.Equal(t, domain.RarityCommon, s.Rarity)
		if s.IsWild {
			wilds++
		}
	}
	assert.Equal(t, 1, wilds)
	assert.True(t, Playable(Normalize(deck)))
}
