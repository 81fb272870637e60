package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// AuditStore appends action entries for completed steps. Appends are
// best-effort from the engine's point of view: a failed append never rolls
// back the completion it records.
type AuditStore struct {
	db *sql.DB
}

func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) Append(ctx context.Context, motorID string, stepID int64, technicianID, action string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_log (motor_id, step_id, technician_id, action) VALUES (?, ?, ?, ?)
	`, motorID, stepID, technicianID, action)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (s *AuditStore) ListByMotor(ctx context.Context, motorID string) ([]*domain.AuditEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, motor_id, step_id, technician_id, action, created_at
		FROM audit_log WHERE motor_id = ? ORDER BY id ASC
	`, motorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var entries []*domain.AuditEntry
	for rows.Next() {
		e := &domain.AuditEntry{}
		if err := rows.Scan(&e.ID, &e.MotorID, &e.StepID, &e.TechnicianID, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}
