package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	httpClient "github.com/alawein/labsync/internal/client/api"
	"github.com/alawein/labsync/internal/client/config"
	"github.com/alawein/labsync/internal/client/data"
	"github.com/alawein/labsync/internal/client/storage/boltdb"
	syncpkg "github.com/alawein/labsync/internal/client/sync"
)

// app собирает зависимости команды: конфиг, локальное хранилище,
// HTTP клиент, сервис данных и координатор синхронизации.
type app struct {
	cfg         *config.Config
	store       *boltdb.Storage
	apiClient   *httpClient.Client
	dataService data.Service
	coordinator *syncpkg.Coordinator
	logger      *slog.Logger
}

// newApp opens the local store and wires the services for one command run
func newApp(ctx context.Context) (*app, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	var opts []boltdb.Option
	if cfg.QuotaBytes > 0 {
		opts = append(opts, boltdb.WithQuotaBytes(cfg.QuotaBytes))
	}

	store, err := boltdb.New(ctx, cfg.DBPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	apiClient := httpClient.NewClient(cfg.ServerURL)

	coordinator := syncpkg.NewCoordinator(apiClient, store, store, store, nil, logger)

	return &app{
		cfg:         cfg,
		store:       store,
		apiClient:   apiClient,
		dataService: data.NewService(store, store),
		coordinator: coordinator,
		logger:      logger,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Failed to close local store", "error", err)
	}
}
