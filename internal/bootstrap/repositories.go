package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/database/postgres"
	"github.com/osse101/wagerengine/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Ledger       repository.Ledger
	Wager        repository.Wager
	DailyCounter repository.DailyCounter
	Counters     repository.CounterPruner
	Play         repository.Play
	Venue        repository.Venue
	Symbols      repository.Symbols
}

// InitializeRepositories creates the Postgres-backed repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	counters := postgres.NewCounterRepository(dbPool)
	return &Repositories{
		Ledger:       postgres.NewLedgerRepository(dbPool),
		Wager:        postgres.NewWagerRepository(dbPool),
		DailyCounter: counters,
		Counters:     counters,
		Play:         postgres.NewPlayRepository(dbPool),
		Venue:        postgres.NewVenueRepository(dbPool),
		Symbols:      postgres.NewSymbolRepository(dbPool),
	}
}
