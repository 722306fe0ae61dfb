package entity

import (
	"context"
	"errors"
	"strings"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead é o contato comercial acompanhado pelo pipeline.
// ID, AIScore e AICategory pertencem ao backend; o core nunca os altera.
type Lead struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Email      string `json:"email"`
	Notes      string `json:"notes"`
	AIScore    int    `json:"ai_score"`
	AICategory string `json:"ai_category"`
	Status     string `json:"status"`
}

// Stage devolve o status do lead, assumindo New quando vazio.
func (l Lead) Stage() Stage {
	if strings.TrimSpace(l.Status) == "" {
		return StageNew
	}
	return Stage(l.Status)
}

// LeadDraft carrega os campos que o usuário informa na criação.
type LeadDraft struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}

// LeadBackend é o contrato REST do CRUD de leads.
type LeadBackend interface {
	ListLeads(ctx context.Context) ([]Lead, error)
	CreateLead(ctx context.Context, draft LeadDraft) (*Lead, error)
	DeleteLead(ctx context.Context, id string) error
	UpdateLeadStatus(ctx context.Context, id string, status string) (*Lead, error)
}
