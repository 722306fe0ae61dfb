package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

const (
	uniqueViolation   = "23505"
	defaultRecentSize = 20
	maxRecentSize     = 200
)

const activitySchema = `
	CREATE TABLE IF NOT EXISTS lead_activity (
		event_id    UUID PRIMARY KEY,
		kind        TEXT NOT NULL,
		lead_id     TEXT NOT NULL,
		lead_name   TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS lead_activity_occurred_at_idx ON lead_activity (occurred_at DESC);
`

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, activitySchema); err != nil {
		return fmt.Errorf("falha ao criar tabela lead_activity: %w", err)
	}
	return nil
}

// Record grava o evento. event_id repetido vira entity.ErrDuplicateActivity.
func (r *ActivityRepository) Record(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO lead_activity (event_id, kind, lead_id, lead_name, status, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.EventID,
		a.Kind,
		a.LeadID,
		a.LeadName,
		a.Status,
		a.OccurredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrDuplicateActivity
		}
		return fmt.Errorf("falha ao gravar atividade: %w", err)
	}

	return nil
}

// Recent devolve as atividades mais novas primeiro, opcionalmente filtradas por kind.
func (r *ActivityRepository) Recent(ctx context.Context, limit int, kinds ...string) ([]entity.Activity, error) {
	if limit <= 0 {
		limit = defaultRecentSize
	}
	if limit > maxRecentSize {
		limit = maxRecentSize
	}

	query := `
		SELECT event_id, kind, lead_id, lead_name, status, occurred_at
		FROM lead_activity
		WHERE cardinality($1::text[]) = 0 OR kind = ANY($1::text[])
		ORDER BY occurred_at DESC
		LIMIT $2
	`

	if kinds == nil {
		kinds = []string{}
	}

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(kinds), limit)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar atividades: %w", err)
	}
	defer rows.Close()

	out := []entity.Activity{}
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.EventID, &a.Kind, &a.LeadID, &a.LeadName, &a.Status, &a.OccurredAt); err != nil {
			return nil, fmt.Errorf("falha ao ler atividade: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
