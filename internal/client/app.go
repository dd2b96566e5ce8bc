package client

import (
	"context"
	"fmt"

	"github.com/moneytrackultra/go-cashbook/internal/adapter"
	"github.com/moneytrackultra/go-cashbook/internal/config"
	"github.com/moneytrackultra/go-cashbook/internal/crypto"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
	"github.com/moneytrackultra/go-cashbook/internal/service"
	"github.com/moneytrackultra/go-cashbook/internal/store"
)

// App owns the assembled client: configuration, the durable local store,
// the provider adapter, and the service layer.
type App struct {
	Config       *config.ClientConfig
	LocalState   store.LocalState
	Provider     adapter.IdentityProvider
	Connectivity adapter.ConnectivityOracle
	Services     *service.Services

	logger *logger.Logger
	db     *store.DB
}

// NewApp assembles the client from configuration: logger, SQLite store with
// migrations applied, HTTP provider adapter, connectivity oracle, and the
// service layer on top.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var log *logger.Logger
	if cfg.App.LogToFile {
		log = logger.NewFileLogger("client")
	} else {
		log = logger.NewLogger("client")
	}

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	localState := store.NewLocalState(db, log)

	provider := adapter.NewHTTPIdentityProvider(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.RequestTimeout,
	})
	connectivity := adapter.NewHTTPConnectivityOracle(cfg.Remote.BaseURL, 0)

	svcs := service.NewServices(localState, provider, connectivity, crypto.NewCredentialHasher(), log)

	return &App{
		Config:       cfg,
		LocalState:   localState,
		Provider:     provider,
		Connectivity: connectivity,
		Services:     svcs,
		logger:       log,
		db:           db,
	}, nil
}

// StartBackground launches the deferred profile-sync drain job. The job
// stops when ctx is cancelled or [App.Close] is called.
func (a *App) StartBackground(ctx context.Context) {
	a.Services.DrainJob.Start(ctx, a.Config.Workers.DrainInterval)
}

// Close stops background work and releases the local database.
func (a *App) Close() error {
	a.Services.DrainJob.Stop()
	return a.db.Close()
}
