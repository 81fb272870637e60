package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// CompletionStore persists the per-(motor, step) completion records. All
// writes are single-row upserts keyed on the unique (motor_id, step_id)
// pair; that constraint is the only coordination between concurrent
// attempts (last writer wins).
type CompletionStore struct {
	db *sql.DB
}

func NewCompletionStore(db *sql.DB) *CompletionStore {
	return &CompletionStore{db: db}
}

// Get returns the record for (motorID, stepID), or nil when none exists.
func (s *CompletionStore) Get(ctx context.Context, motorID string, stepID int64) (*domain.Completion, error) {
	c := &domain.Completion{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, motor_id, step_id, completed, completed_at, technician_id
		FROM completions WHERE motor_id = ? AND step_id = ?
	`, motorID, stepID).Scan(&c.ID, &c.MotorID, &c.StepID, &c.Completed, &c.CompletedAt, &c.TechnicianID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}

	return c, nil
}

func (s *CompletionStore) ListByMotor(ctx context.Context, motorID string) ([]*domain.Completion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, motor_id, step_id, completed, completed_at, technician_id
		FROM completions WHERE motor_id = ?
	`, motorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var completions []*domain.Completion
	for rows.Next() {
		c := &domain.Completion{}
		if err := rows.Scan(&c.ID, &c.MotorID, &c.StepID, &c.Completed, &c.CompletedAt, &c.TechnicianID); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating completions: %w", err)
	}

	return completions, nil
}

// EnsureExists lazily creates the (motorID, stepID) row with completed=false
// and returns it. An existing row is returned unchanged, completed or not.
func (s *CompletionStore) EnsureExists(ctx context.Context, motorID string, stepID int64) (*domain.Completion, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completions (motor_id, step_id, completed) VALUES (?, ?, 0)
		ON CONFLICT (motor_id, step_id) DO NOTHING
	`, motorID, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure completion row: %w", err)
	}

	return s.Get(ctx, motorID, stepID)
}

// MarkCompleted upserts the record to completed=true. Replaying against an
// already-completed row overwrites the timestamp and technician; the flag
// is monotonic so both outcomes are equally valid.
func (s *CompletionStore) MarkCompleted(ctx context.Context, motorID string, stepID int64, technicianID string, at time.Time) (*domain.Completion, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completions (motor_id, step_id, completed, completed_at, technician_id)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT (motor_id, step_id) DO UPDATE SET
			completed     = excluded.completed,
			completed_at  = excluded.completed_at,
			technician_id = excluded.technician_id
	`, motorID, stepID, at, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark completion: %w", err)
	}

	return s.Get(ctx, motorID, stepID)
}
