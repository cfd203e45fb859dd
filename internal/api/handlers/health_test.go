package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB returns a pool pointed at a closed port
func unreachableDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=test password=test dbname=test sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func healthRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(unreachableDB(t))

	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/health/ready", handler.Ready)
	router.GET("/health/live", handler.Live)
	return router
}

func TestLive(t *testing.T) {
	w := httptest.NewRecorder()
	healthRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["alive"])
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	w := httptest.NewRecorder()
	healthRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, Version, body.Version)
	assert.Contains(t, body.Services["database"], "error: ")
}

func TestReadyReportsDatabaseDown(t *testing.T) {
	w := httptest.NewRecorder()
	healthRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ready"])
}
