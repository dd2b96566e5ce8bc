package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the cashbook
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Remote holds settings for the remote identity provider endpoint.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the on-device persistent store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background reconciliation jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CASHBOOK_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CASHBOOK_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogToFile routes log output to a file next to the executable instead
	// of stdout. Env: APP_LOG_TO_FILE
	LogToFile bool `env:"LOG_TO_FILE"`
}

// Remote holds network settings for the remote identity provider.
type Remote struct {
	// BaseURL is the identity provider base URL, e.g. "http://localhost:8080".
	// Env: REMOTE_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound provider
	// request (e.g. "15s"). Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the on-device persistence layer.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path used for the durable local record store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background job settings.
type Workers struct {
	// DrainInterval defines how often the deferred profile-sync drain job
	// checks connectivity and retries pending edits.
	// Env: WORKERS_DRAIN_INTERVAL
	DrainInterval time.Duration `env:"DRAIN_INTERVAL"`
}
