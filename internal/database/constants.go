package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections  = 2
	DefaultMaxConnections  = 20
	DefaultMaxConnIdleTime = 30 * time.Minute
	DefaultMaxConnLifetime = time.Hour
	DefaultApplicationName = "wager-engine"

	RuntimeParamApplicationName = "application_name"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationRolledBack             = "Migration rolled back"
)
