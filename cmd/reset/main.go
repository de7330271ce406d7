package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/database"
)

// Drops and recreates the configured database. Local development only.
func main() {
	cfg, err := config.LoadForTools()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment == config.EnvironmentProduction {
		log.Fatal("Refusing to reset a production database")
	}

	server := *cfg
	server.DBName = "postgres"

	ctx := context.Background()
	opts := database.DefaultOptions()
	opts.MaxConns = 2
	serverPool, err := database.NewPool(ctx, server.GetDBConnString(), opts)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	log.Printf("Terminating existing connections to database %s...\n", cfg.DBName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	ident := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Dropping database %s if it exists...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	fmt.Println("Database reset complete. Next step: go run ./cmd/migrate up")
}
