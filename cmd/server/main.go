package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alawein/labsync/internal/server"
	"github.com/alawein/labsync/internal/server/storage/sqlite"
)

// Version задается через ldflags при сборке
var Version = "dev"

func main() {
	defaults := server.DefaultConfig()

	addr := flag.String("addr", defaults.Addr, "listen address")
	dbPath := flag.String("db", "labsync.db", "path to SQLite database")
	rateLimit := flag.Int("rate-limit", defaults.RateLimit, "requests per IP per window, 0 disables")
	rateWindow := flag.Duration("rate-window", defaults.RateWindow, "rate limiter window")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "json", "log format (json or text)")
	flag.Parse()

	logger := newLogger(*logLevel, *logFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("Failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	cfg := server.Config{
		Addr:            *addr,
		Version:         Version,
		RateLimit:       *rateLimit,
		RateWindow:      *rateWindow,
		ShutdownTimeout: defaults.ShutdownTimeout,
	}

	srv := server.NewServer(cfg, store, logger)
	srv.Start()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}

func newLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if strings.ToLower(format) == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
