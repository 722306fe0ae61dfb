package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

const defaultRecentLeads = 4

type AnalyticsHandler struct {
	Store *usecase.LeadStore
}

func NewAnalyticsHandler(store *usecase.LeadStore) *AnalyticsHandler {
	return &AnalyticsHandler{Store: store}
}

type AnalyticsResponse struct {
	Metrics   usecase.Metrics      `json:"metrics"`
	Stages    []usecase.StageCount `json:"stages"`
	Recent    []entity.Lead        `json:"recent"`
	SyncedAt  *time.Time           `json:"synced_at,omitempty"`
	SyncError string               `json:"sync_error,omitempty"`
}

// Handle (GET /analytics?recent=) calcula tudo a partir do snapshot atual.
func (h *AnalyticsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	recent := defaultRecentLeads
	if v := r.URL.Query().Get("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_QUERY", "recent must be a non-negative integer")
			return
		}
		recent = n
	}

	leads := h.Store.Snapshot()
	resp := AnalyticsResponse{
		Metrics: usecase.ComputeMetrics(leads),
		Stages:  usecase.StageCounts(leads),
		Recent:  usecase.RecentLeads(leads, recent),
	}
	if t := h.Store.SyncedAt(); !t.IsZero() {
		resp.SyncedAt = &t
	}
	if err := h.Store.LastError(); err != nil {
		resp.SyncError = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}
