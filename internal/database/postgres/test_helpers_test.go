package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/domain"
)

var (
	testDBConnString  string
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

// ensureMigrations applies the embedded goose migrations once for all tests in the package
func ensureMigrations(t *testing.T) {
	migrationsMux.Lock()
	defer migrationsMux.Unlock()

	if migrationsApplied {
		return
	}

	if err := database.Migrate(context.Background(), testPool); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	migrationsApplied = true
}

// newPlayerID returns an identifier unique to the calling test
func newPlayerID() string {
	return "player-" + uuid.NewString()
}

// seedVenue inserts an enabled venue with a fresh identifier
func seedVenue(t *testing.T, pool *pgxpool.Pool, quota int) *domain.Venue {
	t.Helper()
	v := &domain.Venue{
		ID:              "venue-" + uuid.NewString(),
		Name:            "Test Venue",
		WageringEnabled: true,
		DailyPlayQuota:  quota,
		Timezone:        "UTC",
		GameMode:        "classic",
	}
	require.NoError(t, NewVenueRepository(pool).UpsertVenue(context.Background(), v))
	return v
}

// seedDeposit credits amount to playerID through the ledger
func seedDeposit(t *testing.T, pool *pgxpool.Pool, playerID string, amount int64) {
	t.Helper()
	ctx := context.Background()

	tx, err := NewLedgerRepository(pool).BeginLedgerTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.LockPlayer(ctx, playerID))
	balance, err := tx.CurrentBalance(ctx, playerID)
	require.NoError(t, err)
	require.NoError(t, tx.AppendTransaction(ctx, &domain.LedgerTransaction{
		PlayerID:     playerID,
		Direction:    domain.DirectionCredit,
		Category:     domain.CategoryDeposit,
		Amount:       amount,
		BalanceAfter: balance + amount,
		ReferenceID:  uuid.NewString(),
	}))
	require.NoError(t, tx.Commit(ctx))
}
