package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	Housekeeping *Housekeeping
	DB           database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting requests, let in-flight settlements commit)
// 2. Background jobs
// 3. Database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Housekeeping != nil {
		slog.Info(LogMsgStoppingHousekeeping)
		components.Housekeeping.Stop()
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
