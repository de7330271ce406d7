package bootstrap

// Service identity reported in every log line
const ServiceName = "wagerengine"

// Background job sizing. Jobs get a multiple of the wager transaction timeout.
const (
	HousekeepingWorkers       = 1
	HousekeepingQueueSize     = 4
	HousekeepingTimeoutFactor = 12
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting wager engine"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgGameModesLoaded     = "Game modes loaded"
	LogMsgServicesInitialized = "Services initialized"
	LogMsgHousekeepingStarted = "Housekeeping scheduled"
)

// Errors raised while wiring components
const (
	ErrMsgFailedLoadGameModes = "failed to load game modes"
	ErrFmtFailedBuildMode     = "failed to build game mode %q: %w"
	ErrMsgFailedCreateSigner  = "failed to create result signer"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingHousekeeping = "Stopping housekeeping"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
