package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/nexus-pipeline/internal/infra/clipboard"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

type DraftHandler struct {
	Store       *usecase.LeadStore
	Drafts      *usecase.EmailDraftOrchestrator
	Clipboard   *clipboard.Buffer
	Mailer      usecase.DraftMailer
	rateLimiter *RateLimiter
}

func NewDraftHandler(
	store *usecase.LeadStore,
	drafts *usecase.EmailDraftOrchestrator,
	clip *clipboard.Buffer,
	mailer usecase.DraftMailer,
	perMinute int,
) *DraftHandler {
	return &DraftHandler{
		Store:       store,
		Drafts:      drafts,
		Clipboard:   clip,
		Mailer:      mailer,
		rateLimiter: NewRateLimiter(perMinute, time.Minute),
	}
}

type ClipboardResponse struct {
	Text     string     `json:"text"`
	CopiedAt *time.Time `json:"copied_at,omitempty"`
}

// Request (POST /leads/{id}/draft) abre um ciclo e responde já com o placeholder.
func (h *DraftHandler) Request(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	id := chi.URLParam(r, "id")
	lead, ok := h.Store.Find(id)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeLeadNotFound, "lead not found")
		return
	}

	// O ciclo sobrevive ao fim desta requisição HTTP.
	state, _ := h.Drafts.Request(context.WithoutCancel(r.Context()), lead)

	writeJSON(w, http.StatusAccepted, state)
}

// State (GET /draft)
func (h *DraftHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Drafts.State())
}

// Dismiss (DELETE /draft)
func (h *DraftHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.Drafts.Dismiss()
	writeJSON(w, http.StatusOK, h.Drafts.State())
}

// Copy (POST /draft/copy)
func (h *DraftHandler) Copy(w http.ResponseWriter, r *http.Request) {
	if err := h.Drafts.CopyDraft(h.Clipboard); err != nil {
		writeUseCaseError(w, err)
		return
	}
	h.Paste(w, r)
}

// Paste (GET /draft/clipboard)
func (h *DraftHandler) Paste(w http.ResponseWriter, r *http.Request) {
	text, copiedAt := h.Clipboard.Paste()
	resp := ClipboardResponse{Text: text}
	if !copiedAt.IsZero() {
		resp.CopiedAt = &copiedAt
	}
	writeJSON(w, http.StatusOK, resp)
}

// Send (POST /draft/send)
func (h *DraftHandler) Send(w http.ResponseWriter, r *http.Request) {
	if h.Mailer == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "MAIL_NOT_CONFIGURED", "SMTP is not configured")
		return
	}
	if err := h.Drafts.SendDraft(r.Context(), h.Mailer); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

// CleanupLimiter roda periodicamente até o ctx acabar.
func (h *DraftHandler) CleanupLimiter(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.rateLimiter.Cleanup()
		}
	}
}
