package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // venue time zones must resolve on minimal images

	"github.com/osse101/wagerengine/internal/bootstrap"
	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/middleware"
	"github.com/osse101/wagerengine/internal/server"
)

// @title Wager Engine API
// @version 1.0
// @description Server-authoritative wagering: settlement, ledger and audit.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Wager engine exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := database.DefaultOptions()
	opts.MaxConns = cfg.DBMaxConns
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), opts)
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return err
		}
	}

	modes, err := bootstrap.LoadGameModes(cfg.WagerConfigPath)
	if err != nil {
		pool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(pool)
	services, err := bootstrap.InitializeServices(cfg, repos, modes)
	if err != nil {
		pool.Close()
		return err
	}
	housekeeping := bootstrap.StartHousekeeping(cfg, repos)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Session:        middleware.NewSession([]byte(cfg.SessionSecret)),
	}, pool, services)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		Housekeeping: housekeeping,
		DB:           pool,
	})

	return serveErr
}
