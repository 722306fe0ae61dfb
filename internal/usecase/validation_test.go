package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

func fieldsOf(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateLeadDraftValid(t *testing.T) {
	assert.Empty(t, ValidateLeadDraft(validDraft()))
}

func TestValidateLeadDraftRequiresAllFields(t *testing.T) {
	errs := ValidateLeadDraft(entity.LeadDraft{Name: " ", Notes: "\t"})

	assert.Equal(t, []string{"name", "company", "email", "notes"}, fieldsOf(errs))
}

// O core só confere presença; formato e tamanho são do backend.
func TestValidateLeadDraftAcceptsFreeFormValues(t *testing.T) {
	d := validDraft()
	d.Email = "john at acme"
	d.Name = strings.Repeat("x", 201)
	d.Notes = strings.Repeat("n", 6000)

	assert.Empty(t, ValidateLeadDraft(d))
}

func TestValidateStatus(t *testing.T) {
	st, err := ValidateStatus("Closed")
	assert.NoError(t, err)
	assert.Equal(t, entity.StageClosed, st)

	_, err = ValidateStatus("Won")
	assert.Equal(t, CodeInvalidStatus, ErrorCode(err))
	assert.True(t, IsDomainError(err))
}
