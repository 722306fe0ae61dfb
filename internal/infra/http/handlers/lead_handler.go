package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
	"github.com/xavierca1/nexus-pipeline/internal/infra/http/middleware"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

type LeadHandler struct {
	Store *usecase.LeadStore
}

func NewLeadHandler(store *usecase.LeadStore) *LeadHandler {
	return &LeadHandler{Store: store}
}

type LeadListResponse struct {
	Leads     []entity.Lead `json:"leads"`
	Total     int           `json:"total"`
	SyncError string        `json:"sync_error,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// List (GET /leads?q=) devolve o snapshot filtrado pela busca.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Store.Snapshot()
	resp := LeadListResponse{
		Leads: usecase.FilterLeads(snapshot, r.URL.Query().Get("q")),
		Total: len(snapshot),
	}
	if err := h.Store.LastError(); err != nil {
		resp.SyncError = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Refresh (POST /leads/refresh)
func (h *LeadHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Refresh(r.Context()); err != nil {
		writeUseCaseError(w, err)
		return
	}
	h.List(w, r)
}

// Create (POST /leads)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft entity.LeadDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	lead, err := h.Store.Create(r.Context(), draft)
	middleware.RecordLeadMutation("create", err)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

// Delete (DELETE /leads/{id})
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.Remove(r.Context(), id)
	middleware.RecordLeadMutation("delete", err)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus (PATCH /leads/{id}) aceita só etapas conhecidas.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	stage, err := usecase.ValidateStatus(req.Status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	lead, err := h.Store.SetStatus(r.Context(), id, stage)
	middleware.RecordLeadMutation("set_status", err)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// Advance (POST /leads/{id}/advance)
func (h *LeadHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "advance", h.Store.Advance)
}

// Revert (POST /leads/{id}/revert)
func (h *LeadHandler) Revert(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "revert", h.Store.Revert)
}

// Toggle (POST /leads/{id}/toggle)
func (h *LeadHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "toggle", h.Store.Toggle)
}

func (h *LeadHandler) transition(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, string) (*entity.Lead, error)) {
	id := chi.URLParam(r, "id")

	lead, err := fn(r.Context(), id)
	middleware.RecordLeadMutation(op, err)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

var exportHeader = []string{"id", "name", "company", "email", "status", "ai_score", "ai_category", "tier", "notes"}

// Export (GET /leads/export) baixa o snapshot em CSV.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	leads := usecase.FilterLeads(h.Store.Snapshot(), r.URL.Query().Get("q"))

	filename := "leads-" + time.Now().UTC().Format("20060102-150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	cw.Write(exportHeader)
	for _, l := range leads {
		cw.Write([]string{
			l.ID,
			l.Name,
			l.Company,
			l.Email,
			string(l.Stage()),
			strconv.Itoa(l.AIScore),
			l.AICategory,
			usecase.ScoreTier(l.AIScore),
			l.Notes,
		})
	}
	cw.Flush()
}
