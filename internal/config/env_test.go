package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_LOG_TO_FILE", "true")
	t.Setenv("REMOTE_ADDRESS", "http://identity.example:9999")
	t.Setenv("REMOTE_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/cashbook-test.db")
	t.Setenv("WORKERS_DRAIN_INTERVAL", "1m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.True(t, cfg.App.LogToFile)
	assert.Equal(t, "http://identity.example:9999", cfg.Remote.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "/tmp/cashbook-test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.DrainInterval)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Remote.BaseURL)
	assert.Zero(t, cfg.Remote.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("REMOTE_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}
