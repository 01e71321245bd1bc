package handlers_test

import (
	"net/http"
	"testing"

	"copro-backend/internal/api/handlers"
	"copro-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB returns a handle whose pool points at a closed port
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=nobody dbname=none sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(unreachableDB(t))
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)

	t.Run("health reports the database as unreachable", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/health", nil)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, rec, http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "unreachable", resp.Services["database"])
		assert.Equal(t, handlers.Version, resp.Version)
		assert.Empty(t, resp.LatencyMS)
	})

	t.Run("not ready", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/health/ready", nil)

		var resp handlers.ReadyResponse
		testutils.AssertJSONResponse(t, rec, http.StatusServiceUnavailable, &resp)
		assert.False(t, resp.Ready)
		assert.Equal(t, "not ready", resp.Services["database"])
		assert.Equal(t, "unknown", resp.Services["schema"])
	})

	t.Run("still alive", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/health/live", nil)

		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, true, resp["alive"])
	})
}
