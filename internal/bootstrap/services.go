package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/ledger"
	"github.com/osse101/wagerengine/internal/limiter"
	"github.com/osse101/wagerengine/internal/server"
	"github.com/osse101/wagerengine/internal/signer"
	"github.com/osse101/wagerengine/internal/symbols"
	"github.com/osse101/wagerengine/internal/venue"
	"github.com/osse101/wagerengine/internal/wager"
)

// InitializeServices wires the domain services on top of repos and modes.
// The venue service doubles as the cached venue provider of the limiter and
// the coordinator so both see the same settings.
func InitializeServices(cfg *config.Config, repos *Repositories, modes wager.Modes) (server.Services, error) {
	sig, err := signer.NewWithVersion([]byte(cfg.SigningSecret), cfg.SignatureVersion)
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedCreateSigner, err)
	}

	venueSvc := venue.NewService(repos.Venue, modes, cfg.VenueCacheSize, cfg.VenueCacheTTL)
	limiterSvc := limiter.NewService(venueSvc, repos.DailyCounter, limiter.Config{DevMode: cfg.DevMode})
	resolver := symbols.NewResolver(repos.Symbols)

	wagerSvc := wager.NewService(
		repos.Wager,
		repos.Play,
		venueSvc,
		limiterSvc,
		resolver,
		sig,
		modes,
		wager.Config{TxTimeout: cfg.TxTimeout},
	)

	slog.Info(LogMsgServicesInitialized, "signature_version", cfg.SignatureVersion, "modes", len(modes))

	return server.Services{
		Wager:   wagerSvc,
		Ledger:  ledger.NewService(repos.Ledger),
		Venue:   venueSvc,
		Limiter: limiterSvc,
	}, nil
}
