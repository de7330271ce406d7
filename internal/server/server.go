package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/wagerengine/docs"
	"github.com/osse101/wagerengine/internal/database"
	"github.com/osse101/wagerengine/internal/handler"
	"github.com/osse101/wagerengine/internal/ledger"
	"github.com/osse101/wagerengine/internal/limiter"
	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/metrics"
	"github.com/osse101/wagerengine/internal/middleware"
	"github.com/osse101/wagerengine/internal/venue"
	"github.com/osse101/wagerengine/internal/wager"
)

// Services groups the domain services exposed over HTTP
type Services struct {
	Wager   wager.Service
	Ledger  ledger.Service
	Venue   venue.Service
	Limiter limiter.Service
}

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Session        *middleware.Session
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Player routes take a session token and
// operator routes take the API key.
func NewRouter(opts Options, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	wagerHandler := handler.NewWagerHandler(svc.Wager, svc.Limiter)
	ledgerHandler := handler.NewLedgerHandler(svc.Ledger)
	venueHandler := handler.NewVenueHandler(svc.Venue)
	auditHandler := handler.NewAuditHandler(svc.Wager)

	r.Route("/api/v1", func(r chi.Router) {
		// Player routes
		r.Group(func(r chi.Router) {
			r.Use(opts.Session.Require)

			r.Post("/wagers", wagerHandler.HandlePlaceWager)
			r.Get("/balance", ledgerHandler.HandleGetBalance)
			r.Get("/transactions", ledgerHandler.HandleGetTransactions)
			r.Get("/venues/{venueID}/plays-remaining", wagerHandler.HandlePlaysRemaining)
		})

		// Operator routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Post("/ledger/deposit", ledgerHandler.HandleDeposit)

			r.Get("/venues/{venueID}", venueHandler.HandleGetVenue)
			r.Put("/venues/{venueID}", venueHandler.HandleUpsertVenue)

			r.Get("/plays", auditHandler.HandleListPlays)
			r.Get("/plays/{playID}/verify", auditHandler.HandleVerifyPlay)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are too frequent to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
