package config

const (
	// Configuration file paths
	ConfigPathWager = "configs/wager.yaml"
)

// Secret requirements
const (
	MinSecretLength = 32
)

// Error Messages
const (
	ErrMsgParseEnv              = "failed to parse environment"
	ErrMsgAPIKeyRequired        = "API_KEY environment variable must be set for security"
	ErrFmtSecretTooShort        = "%s must be at least %d bytes"
	ErrFmtInvalidPort           = "invalid PORT value: %d"
	ErrMsgDevModeInProduction   = "DEV_MODE cannot be enabled in production"
	ErrMsgLoadWagerConfig       = "failed to load wager config"
	ErrMsgNoGameModes           = "wager config defines no game modes"
	ErrFmtInvalidGameMode       = "game mode %q: %w"
	ErrFmtInvalidBetBounds      = "bet bounds must satisfy 1 <= min_bet <= max_bet, got %d..%d"
	ErrMsgInvalidTimeoutSetting = "TX_TIMEOUT, SHUTDOWN_TIMEOUT and HOUSEKEEPING_INTERVAL must be positive"
	ErrMsgNegativeRetention     = "COUNTER_RETENTION must not be negative"
)

// Environment names
const (
	EnvironmentProduction = "production"
)
