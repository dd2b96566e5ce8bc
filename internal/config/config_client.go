package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a value is absent from every
// configuration source.
const (
	DefaultRemoteBaseURL  = "http://localhost:8080"
	DefaultDatabasePath   = "cashbook.db"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDrainInterval  = 5 * time.Minute
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// LogToFile routes log output to a file next to the executable.
	LogToFile bool
}

// ClientRemote holds network settings used by the provider adapter.
type ClientRemote struct {
	// BaseURL is the identity provider base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound provider requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite file path for the durable local record store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DrainInterval defines how often the deferred profile-sync drain job
	// runs.
	DrainInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains provider endpoint settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration.
//
// It merges environment variables, command-line flags, and an optional JSON
// file via the config builder, maps the result onto [ClientConfig], fills in
// defaults for absent values, and validates the final configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogToFile: cfg.App.LogToFile,
		},
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{DrainInterval: cfg.Workers.DrainInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Remote.BaseURL == "" {
		cfg.Remote.BaseURL = DefaultRemoteBaseURL
	}
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabasePath
	}
	if cfg.Workers.DrainInterval == 0 {
		cfg.Workers.DrainInterval = DefaultDrainInterval
	}
}
