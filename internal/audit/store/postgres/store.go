// Package postgres persists audit events in a Postgres table via
// database/sql. complyd only ever appends and reads recent rows; retention
// is a deployment concern.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"complyd/internal/audit"
	"complyd/pkg/platform/sentinel"
)

// Store implements audit.Store on a Postgres table.
type Store struct {
	db *sql.DB
}

// New creates a Postgres audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the audit table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS audit_events (
			id         UUID PRIMARY KEY,
			ts         TIMESTAMPTZ NOT NULL,
			category   TEXT NOT NULL,
			action     TEXT NOT NULL,
			target     TEXT NOT NULL DEFAULT '',
			outcome    TEXT NOT NULL DEFAULT '',
			request_id TEXT NOT NULL DEFAULT ''
		)`)
	if err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

// Append writes one event.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, ts, category, action, target, outcome, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.Timestamp, string(event.Category),
		event.Action, event.Target, event.Outcome, event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}

// ListRecent returns the newest events, most recent first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ts, category, action, target, outcome, request_id
		FROM audit_events
		ORDER BY ts DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w: %v", sentinel.ErrUnavailable, err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e        audit.Event
			id       string
			category string
		)
		if err := rows.Scan(&id, &e.Timestamp, &category, &e.Action, &e.Target, &e.Outcome, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse audit event id: %w", err)
		}
		e.ID = parsed
		e.Category = audit.Category(category)
		events = append(events, e)
	}
	return events, rows.Err()
}
