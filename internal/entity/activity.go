package entity

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateActivity = errors.New("activity already recorded")

const (
	ActivityLeadCreated       = "lead.created"
	ActivityLeadDeleted       = "lead.deleted"
	ActivityLeadStatusChanged = "lead.status_changed"
)

// Activity é uma entrada do feed "Recent Intelligence".
type Activity struct {
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	LeadID     string    `json:"lead_id"`
	LeadName   string    `json:"lead_name,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ActivityRepositoryInterface interface {
	Record(ctx context.Context, a *Activity) error
	Recent(ctx context.Context, limit int, kinds ...string) ([]Activity, error)
}
