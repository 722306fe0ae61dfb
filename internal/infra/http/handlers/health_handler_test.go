package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

func checkHealth(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.Handle(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr.Code, resp
}

func TestHealthPendingBeforeFirstSync(t *testing.T) {
	store := usecase.NewLeadStore(newFakeBackend(), nil)

	code, resp := checkHealth(t, NewHealthHandler(nil, nil, store))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "pending", resp.Dependencies["backend"])
	assert.Equal(t, "not configured", resp.Dependencies["database"])
	assert.Equal(t, "not configured", resp.Dependencies["rabbitmq"])
}

func TestHealthSynced(t *testing.T) {
	code, resp := checkHealth(t, NewHealthHandler(nil, nil, syncedStore(newFakeBackend(sampleLeads()...))))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Dependencies["backend"])
}

// TestHealthDegradedWhenBackendFails - último refresh falhou
func TestHealthDegradedWhenBackendFails(t *testing.T) {
	backend := newFakeBackend()
	backend.listErr = errors.New("connection refused")
	store := usecase.NewLeadStore(backend, nil)
	_ = store.Refresh(context.Background())

	code, resp := checkHealth(t, NewHealthHandler(nil, nil, store))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Contains(t, resp.Dependencies["backend"], "connection refused")
}
