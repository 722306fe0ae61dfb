package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-pipeline/internal/infra/clipboard"
	"github.com/xavierca1/nexus-pipeline/internal/infra/http/handlers"
	"github.com/xavierca1/nexus-pipeline/internal/infra/integration/nexus"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/leads/":
			io.WriteString(w, `[{"id": 1, "name": "Ana", "company": "Acme", "email": "ana@acme.com",
				"notes": "n", "status": "New", "ai_score": 90, "ai_category": "Hot Lead"}]`)
		case r.Method == http.MethodPatch && r.URL.Path == "/leads/1":
			io.WriteString(w, `{"id": 1, "name": "Ana", "status": "Contacted", "ai_score": 90}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail": "Not Found"}`)
		}
	}))
	t.Cleanup(backend.Close)

	client := nexus.NewClient(backend.URL, time.Second)
	store := usecase.NewLeadStore(client, nil)
	require.NoError(t, store.Refresh(context.Background()))
	drafts := usecase.NewEmailDraftOrchestrator(client)

	return newRouter(routes{
		leads:     handlers.NewLeadHandler(store),
		analytics: handlers.NewAnalyticsHandler(store),
		drafts:    handlers.NewDraftHandler(store, drafts, clipboard.NewBuffer(), nil, 10),
		activity:  handlers.NewActivityHandler(nil),
		health:    handlers.NewHealthHandler(nil, nil, store),
	}, []string{"http://localhost:5173"})
}

func TestRouterServesLeads(t *testing.T) {
	router := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/leads?q=acme", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp handlers.LeadListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Leads, 1)
	assert.Equal(t, "1", resp.Leads[0].ID)
}

func TestRouterAdvanceUsesPathID(t *testing.T) {
	router := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/leads/1/advance", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Contacted")
}

func TestRouterDeleteUnknownLead(t *testing.T) {
	router := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/leads/42", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), usecase.CodeLeadNotFound)
}

func TestRouterMetricsAndHealth(t *testing.T) {
	router := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "http_requests_total"))
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/leads", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}
