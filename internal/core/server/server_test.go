package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-orders/internal/core/config"
	"storefront-orders/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	require.NoError(t, logger.Init("development", "debug"))
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestNew_RayID verifies that every response carries a generated ray id exposed to handlers.
func TestNew_RayID(t *testing.T) {
	require.NoError(t, logger.Init("development", "error"))
	srv := New(&config.AppConfig{})

	var seen string
	srv.App.Get("/probe", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("requestid").(string)
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)

	rayID := resp.Header.Get(RayIDHeader)
	assert.Equal(t, rayID, seen)
	_, err = uuid.Parse(rayID)
	assert.NoError(t, err)
}

// TestNew_RayIDPassthrough verifies that a client supplied ray id is kept.
func TestNew_RayIDPassthrough(t *testing.T) {
	require.NoError(t, logger.Init("development", "error"))
	srv := New(&config.AppConfig{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RayIDHeader, "client-ray")
	resp, err := srv.App.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "client-ray", resp.Header.Get(RayIDHeader))
}

// TestNew_RecoversFromPanic verifies that a panicking handler yields a 500 instead of crashing.
func TestNew_RecoversFromPanic(t *testing.T) {
	require.NoError(t, logger.Init("development", "error"))
	srv := New(&config.AppConfig{})

	srv.App.Get("/boom", func(c *fiber.Ctx) error {
		panic("slice bounds out of range")
	})

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RayIDHeader))

	resp, err = srv.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	require.NoError(t, logger.Init("development", "error"))

	srv := New(cfg)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
