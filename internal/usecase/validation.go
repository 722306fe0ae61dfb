package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLeadDraft só exige os quatro campos preenchidos. Formato de e-mail
// e tamanhos ficam por conta do backend.
func ValidateLeadDraft(input entity.LeadDraft) []ValidationError {
	var errors []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"company", input.Company},
		{"email", input.Email},
		{"notes", input.Notes},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errors = append(errors, ValidationError{r.field, "is required"})
		}
	}

	return errors
}

// validationFailure dobra a lista de erros num único DomainError.
func validationFailure(validationErrors []ValidationError) error {
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}

// ValidateStatus rejects statuses outside the pipeline. Used by the API
// surface; LeadStore.SetStatus itself forwards any value.
func ValidateStatus(status string) (entity.Stage, error) {
	st, ok := entity.ParseStage(status)
	if !ok {
		return "", &DomainError{
			Code:    CodeInvalidStatus,
			Message: fmt.Sprintf("status %q is not a pipeline stage", status),
		}
	}
	return st, nil
}
