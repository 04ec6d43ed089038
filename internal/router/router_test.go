package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/logging"
)

const testAPIKey = "abcdefghijklmnopqrstuvwxyz0123456789"

func newApp(t *testing.T, authEnabled bool) *fiber.App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Datasets.DataDir = t.TempDir()
	cfg.Auth.Enabled = authEnabled
	cfg.Auth.APIKeys = []string{testAPIKey}
	return New(logging.NewNop(), cfg, "test")
}

func TestRoutes(t *testing.T) {
	app := newApp(t, false)

	tests := []struct {
		url    string
		status int
	}{
		{"/health", fiber.StatusOK},
		{"/v1/measures", fiber.StatusOK},
		{"/v1/measures/welfare?values=1,2,3", fiber.StatusOK},
		{"/v1/curves/pen?values=1,2,3", fiber.StatusOK},
		{"/v1/datasets", fiber.StatusOK},
		{"/v1/datasets/missing", fiber.StatusNotFound},
		{"/v2/anything", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRoutes_RequestID(t *testing.T) {
	app := newApp(t, false)

	req := httptest.NewRequest("GET", "/v1/measures", nil)
	req.Header.Set(logging.RequestIDHeader, "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(logging.RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/v1/measures", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(logging.RequestIDHeader))
}

func TestRoutes_Auth(t *testing.T) {
	app := newApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/v1/measures", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/v1/measures", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
