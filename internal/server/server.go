// Package server собирает HTTP сервер синхронизации: маршруты,
// middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alawein/labsync/internal/server/handlers"
	"github.com/alawein/labsync/internal/server/middleware"
)

// Config contains server settings
type Config struct {
	Addr            string        // адрес для прослушивания
	Version         string        // версия для health check
	RateLimit       int           // запросов на IP в окно, 0 отключает лимит
	RateWindow      time.Duration // окно rate limiter
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the config used when no flags are given
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RateLimit:       100,
		RateWindow:      time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wraps the HTTP server and its dependencies
type Server struct {
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
	cfg         Config
}

// NewServer creates a server serving the sync API backed by storage
func NewServer(cfg Config, storage handlers.DataStorage, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	syncHandler := handlers.NewSyncHandler(logger, storage)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.HandleFunc("GET /api/sync/{type}", syncHandler.HandleList)
	mux.HandleFunc("POST /api/sync/{type}", syncHandler.HandleCreate)
	mux.HandleFunc("PUT /api/sync/{type}", syncHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/sync/{type}/delete", syncHandler.HandleDelete)

	var handler http.Handler = mux
	if cfg.RateLimit > 0 {
		s.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)
		handler = s.rateLimiter.Middleware()(handler)
	}
	handler = middleware.LoggingWithSkip(logger, []string{"/api/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return s
}

// Handler returns the root handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving in a background goroutine
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", "error", err)
		}
	}()
	s.logger.Info("Server started", "addr", s.cfg.Addr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
