package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"log_to_file": true},
		"remote": {"address": "http://identity.example:8081", "request_timeout": "20s"},
		"storage": {"db": {"dsn": "/data/cashbook.db"}},
		"workers": {"drain_interval": "10m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.LogToFile)
	assert.Equal(t, "http://identity.example:8081", cfg.Remote.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "/data/cashbook.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.DrainInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also be given as plain nanosecond numbers.
	path := writeTempJSON(t, `{"remote": {"request_timeout": 15000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidContent(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestClientConfig_DefaultsAndValidation(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultRemoteBaseURL, cfg.Remote.BaseURL)
	assert.Equal(t, DefaultDatabasePath, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, DefaultDrainInterval, cfg.Workers.DrainInterval)
}

func TestClientConfig_ValidationErrors(t *testing.T) {
	cfg := &ClientConfig{
		Remote:  ClientRemote{BaseURL: "http://x", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: ""}},
		Workers: ClientWorkers{DrainInterval: time.Minute},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "cashbook.db"
	cfg.Remote.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidRemoteConfigs)

	cfg.Remote.RequestTimeout = time.Second
	cfg.Workers.DrainInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
