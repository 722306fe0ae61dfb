package nexus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// wireID aceita id numérico ou string; o backend atual usa inteiros.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*id = wireID(strings.TrimSpace(n.String()))
	return nil
}

type leadResponse struct {
	ID         wireID `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Email      string `json:"email"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
	AIScore    int    `json:"ai_score"`
	AICategory string `json:"ai_category"`
}

type createLeadRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type emailDraftResponse struct {
	Email *string `json:"email"`
}

// errorResponse cobre o formato {"detail": "..."} do backend.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}
