package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

type ActivityHandler struct {
	Repo entity.ActivityRepositoryInterface
}

func NewActivityHandler(repo entity.ActivityRepositoryInterface) *ActivityHandler {
	return &ActivityHandler{Repo: repo}
}

// Handle (GET /activity?limit=&kind=) lista o feed de atividades.
func (h *ActivityHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "ACTIVITY_NOT_CONFIGURED", "activity log is not configured")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_QUERY", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	items, err := h.Repo.Recent(r.Context(), limit, r.URL.Query()["kind"]...)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to load activity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"activity": items})
}
