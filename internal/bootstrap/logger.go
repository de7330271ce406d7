package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/logger"
)

// SetupLogger installs the process-wide structured logger from cfg.
// Source locations are included outside production.
func SetupLogger(cfg *config.Config) {
	addSource := !strings.EqualFold(cfg.Environment, config.EnvironmentProduction)
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, cfg.Version, cfg.Environment, addSource))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"dev_mode", cfg.DevMode)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"wager_config", cfg.WagerConfigPath)
}
