package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/database/postgres"
	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/ledger"
	"github.com/osse101/wagerengine/internal/middleware"
)

// Prepares a local database: creates it when missing, applies migrations,
// seeds a demo venue and bankroll and prints a player session token.
func main() {
	venueID := flag.String("venue", "demo-venue", "venue to seed")
	playerID := flag.String("player", "demo-player", "player to fund and issue a token for")
	bankroll := flag.Int64("bankroll", 1000, "starting deposit for the player, 0 to skip")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed session token")
	flag.Parse()

	cfg, err := config.LoadForTools()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.DefaultOptions())
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to execute migrations: %v", err)
	}

	venue := &domain.Venue{
		ID:              *venueID,
		Name:            "Demo Venue",
		WageringEnabled: true,
		DailyPlayQuota:  10,
		Timezone:        "UTC",
		GameMode:        "classic",
	}
	if err := postgres.NewVenueRepository(pool).UpsertVenue(ctx, venue); err != nil {
		log.Fatalf("Failed to seed venue: %v", err)
	}
	fmt.Printf("Venue %s ready (mode %s, %d plays/day).\n", venue.ID, venue.GameMode, venue.DailyPlayQuota)

	if *bankroll > 0 {
		tx, err := ledger.NewService(postgres.NewLedgerRepository(pool)).Deposit(ctx, *playerID, *bankroll, "setup")
		if err != nil {
			log.Fatalf("Failed to fund player: %v", err)
		}
		fmt.Printf("Player %s balance is now %d.\n", *playerID, tx.BalanceAfter)
	}

	if cfg.SessionSecret == "" {
		fmt.Println("SESSION_SECRET is not set, skipping token.")
		return
	}
	token, err := middleware.NewSession([]byte(cfg.SessionSecret)).Issue(*playerID, *tokenTTL)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Printf("Session token for %s:\n%s\n", *playerID, token)
}

func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	admin := *cfg
	admin.DBName = "postgres"
	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return err
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	_, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize())
	return err
}
