package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/nexus-pipeline/internal/infra/http/middleware"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError traduz DomainError/TechnicalError em status HTTP.
func writeUseCaseError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	switch {
	case usecase.IsDomainError(err):
		status := http.StatusBadRequest
		switch code {
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		case usecase.CodeDraftNotReady:
			status = http.StatusConflict
		}
		if code == usecase.CodeLeadNotFound || code == usecase.CodeBackendRejected {
			middleware.RecordBackendError(code)
		}
		writeErrorResponse(w, status, code, err.Error())

	case usecase.IsTechnicalError(err):
		middleware.RecordBackendError(code)
		log.Printf("❌ Erro técnico: %v", err)
		writeErrorResponse(w, http.StatusBadGateway, code, err.Error())

	default:
		log.Printf("❌ Erro inesperado: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "unexpected error")
	}
}
