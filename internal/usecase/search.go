package usecase

import (
	"strings"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

// MatchesQuery: busca case-insensitive por substring no nome ou na empresa.
func MatchesQuery(lead entity.Lead, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(lead.Name), q) ||
		strings.Contains(strings.ToLower(lead.Company), q)
}

// FilterLeads devolve uma nova fatia com os leads que casam, na ordem original.
func FilterLeads(leads []entity.Lead, query string) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if MatchesQuery(l, query) {
			out = append(out, l)
		}
	}
	return out
}
