package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Advisory lock namespaces
const (
	LockNamespaceLedger = "ledger"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToLockPlayer        = "failed to acquire player lock"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetBalance        = "failed to get balance"
	ErrMsgFailedToAppendTransaction = "failed to append ledger transaction"
	ErrMsgDuplicateLedgerReference  = "ledger reference already recorded"
	ErrMsgFailedToListTransactions  = "failed to list ledger transactions"
	ErrMsgFailedToMarshalMetadata   = "failed to marshal ledger metadata"
	ErrMsgFailedToUnmarshalMetadata = "failed to unmarshal ledger metadata"
	ErrMsgFailedToScanLedgerRow     = "failed to scan ledger row"
)

// Error Messages - Play Operations
const (
	ErrMsgFailedToIncrementCounter = "failed to increment daily counter"
	ErrMsgFailedToGetCounter       = "failed to get daily counter"
	ErrMsgFailedToPruneCounters    = "failed to prune daily counters"
	ErrMsgFailedToInsertPlay       = "failed to insert play record"
	ErrMsgDuplicatePlay            = "play already recorded"
	ErrMsgFailedToGetPlay          = "failed to get play"
	ErrMsgFailedToListPlays        = "failed to list plays"
	ErrMsgFailedToBuildQuery       = "failed to build query"
	ErrMsgFailedToMarshalGrid      = "failed to marshal outcome grid"
	ErrMsgFailedToUnmarshalGrid    = "failed to unmarshal outcome grid"
	ErrMsgInvalidPlayID            = "invalid play id"
)

// Error Messages - Venue and Symbol Operations
const (
	ErrMsgFailedToGetVenue    = "failed to get venue"
	ErrMsgFailedToUpsertVenue = "failed to upsert venue"
	ErrMsgFailedToGetSymbols  = "failed to get unlocked symbols"
	ErrMsgFailedToScanSymbol  = "failed to scan symbol"
)

// Ledger queries
const (
	sqlAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`

	sqlGetBalance = `
		SELECT COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE -amount END), 0)::BIGINT
		FROM ledger_transactions
		WHERE player_id = $1`

	sqlAppendTransaction = `
		INSERT INTO ledger_transactions
			(player_id, direction, category, amount, balance_after, reference_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING transaction_id, created_at`

	sqlListTransactions = `
		SELECT transaction_id, player_id, direction, category, amount, balance_after,
			reference_id, metadata, created_at
		FROM ledger_transactions
		WHERE player_id = $1
		ORDER BY transaction_id DESC
		LIMIT $2`
)

// Daily counter queries
const (
	// The WHERE clause on the conflict branch is the quota guard: when the
	// existing row is already at quota no row is returned.
	sqlIncrementDailyCounter = `
		INSERT INTO daily_play_counters
			(player_id, venue_id, play_date, plays_count, total_wagered, total_won)
		VALUES ($1, $2, $3, 1, $4, $5)
		ON CONFLICT (player_id, venue_id, play_date) DO UPDATE
		SET plays_count = daily_play_counters.plays_count + 1,
			total_wagered = daily_play_counters.total_wagered + EXCLUDED.total_wagered,
			total_won = daily_play_counters.total_won + EXCLUDED.total_won
		WHERE daily_play_counters.plays_count < $6
		RETURNING plays_count, total_wagered, total_won`

	sqlGetDailyCounter = `
		SELECT plays_count, total_wagered, total_won
		FROM daily_play_counters
		WHERE player_id = $1 AND venue_id = $2 AND play_date = $3`

	sqlPruneDailyCounters = `
		DELETE FROM daily_play_counters
		WHERE play_date < $1`
)

// Play queries
const (
	tablePlays = "plays"

	sqlInsertPlay = `
		INSERT INTO plays
			(play_id, player_id, venue_id, game_mode, bet_amount, payout_amount, payout_class,
			 winning_line, outcome_grid, balance_before, balance_after, signature, play_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	sqlGetPlay = `
		SELECT play_id, player_id, venue_id, game_mode, bet_amount, payout_amount, payout_class,
			winning_line, outcome_grid, balance_before, balance_after, signature, play_date, created_at
		FROM plays
		WHERE play_id = $1`
)

var playColumns = []string{
	"play_id", "player_id", "venue_id", "game_mode", "bet_amount", "payout_amount", "payout_class",
	"winning_line", "outcome_grid", "balance_before", "balance_after", "signature", "play_date", "created_at",
}

// Venue queries
const (
	sqlGetVenue = `
		SELECT venue_id, name, wagering_enabled, daily_play_quota, timezone, game_mode, updated_at
		FROM venues
		WHERE venue_id = $1`

	sqlUpsertVenue = `
		INSERT INTO venues (venue_id, name, wagering_enabled, daily_play_quota, timezone, game_mode, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (venue_id) DO UPDATE
		SET name = EXCLUDED.name,
			wagering_enabled = EXCLUDED.wagering_enabled,
			daily_play_quota = EXCLUDED.daily_play_quota,
			timezone = EXCLUDED.timezone,
			game_mode = EXCLUDED.game_mode,
			updated_at = NOW()
		RETURNING updated_at`
)

// Symbol queries
const (
	sqlUnlockedSymbols = `
		SELECT s.symbol_id, s.display_value, s.level, s.rarity, s.is_wild
		FROM player_symbols ps
		JOIN symbols s ON s.symbol_id = ps.symbol_id
		WHERE ps.player_id = $1
		ORDER BY s.symbol_id`
)
