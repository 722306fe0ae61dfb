package nexus

import (
	"encoding/json"
	"strings"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

func mapToLead(r leadResponse) entity.Lead {
	return entity.Lead{
		ID:         string(r.ID),
		Name:       r.Name,
		Company:    r.Company,
		Email:      r.Email,
		Notes:      r.Notes,
		AIScore:    r.AIScore,
		AICategory: r.AICategory,
		Status:     r.Status,
	}
}

func mapToLeads(rs []leadResponse) []entity.Lead {
	out := make([]entity.Lead, 0, len(rs))
	for _, r := range rs {
		out = append(out, mapToLead(r))
	}
	return out
}

// detailMessage extrai uma mensagem legível do corpo de erro. Validações do
// backend vêm como lista; nesse caso devolvemos o JSON cru.
func detailMessage(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}
	var s string
	if err := json.Unmarshal(resp.Detail, &s); err == nil {
		return s
	}
	return string(resp.Detail)
}
