package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT",
	"ORDER_SOURCE", "ORDER_FIXTURE_PATH", "ORDERS_API_URL", "ORDERS_API_KEY", "ORDERS_API_TIMEOUT_SECONDS",
	"REDIS_URL", "ORDER_CACHE_TTL_SECONDS", "THUMB_TILE_PX", "THUMB_GAP_PX",
	"DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE", "CARRIER_UPS_URL", "PROXY_ENABLED", "PROXY_HOST", "PROXY_PORT",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, OrderSourceFixture, cfg.Orders.Source)
	assert.Equal(t, "data/orders.json", cfg.Orders.FixturePath)
	assert.Equal(t, 10*time.Second, cfg.Orders.Timeout())
	assert.Equal(t, 5*time.Minute, cfg.Cache.OrderTTL())
	assert.Empty(t, cfg.Cache.RedisURL)
	assert.Equal(t, 64, cfg.Thumbnails.TilePx)
	assert.Equal(t, 8, cfg.Thumbnails.GapPx)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Contains(t, cfg.Carriers.UPSURL, "%s")
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ORDER_SOURCE", "HTTP")
	t.Setenv("ORDERS_API_URL", "https://api.example.com")
	t.Setenv("ORDERS_API_KEY", "key_123")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("THUMB_TILE_PX", "48")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOST", "proxy.internal")
	t.Setenv("PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, OrderSourceHTTP, cfg.Orders.Source)
	assert.Equal(t, "https://api.example.com", cfg.Orders.APIURL)
	assert.Equal(t, "key_123", cfg.Orders.APIKey)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, 48, cfg.Thumbnails.TilePx)
	assert.True(t, cfg.Proxy.Enabled)
	assert.Equal(t, "proxy.internal", cfg.Proxy.Hostname)
	assert.Equal(t, 3128, cfg.Proxy.Port)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
ORDER_FIXTURE_PATH=/srv/orders.json
MAX_PAGE_SIZE=25
`)
	require.NoError(t, os.WriteFile(dir+"/.env", content, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "/srv/orders.json", cfg.Orders.FixturePath)
	assert.Equal(t, 25, cfg.Pagination.MaxPageSize)
}

// TestLoad_ValidationFailure verifies that inconsistent settings return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"http without url", map[string]string{"ORDER_SOURCE": "http"}, "missing required configuration: ORDERS_API_URL"},
		{"unknown source", map[string]string{"ORDER_SOURCE": "ftp"}, "invalid ORDER_SOURCE"},
		{"page size above max", map[string]string{"DEFAULT_PAGE_SIZE": "60"}, "invalid pagination"},
		{"zero tile", map[string]string{"THUMB_TILE_PX": "0"}, "invalid thumbnail geometry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(".")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
