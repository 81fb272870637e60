package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// StepStore reads the maintenance checklist catalog. The catalog is
// reference data: rows are seeded once and never modified at runtime.
type StepStore struct {
	db *sql.DB
}

func NewStepStore(db *sql.DB) *StepStore {
	return &StepStore{db: db}
}

func (s *StepStore) Create(ctx context.Context, order int, name string, isMandatory, requiresPhoto bool) (*domain.Step, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO maintenance_steps (step_order, step_name, is_mandatory, requires_photo)
		VALUES (?, ?, ?, ?)
	`, order, name, isMandatory, requiresPhoto)
	if err != nil {
		return nil, fmt.Errorf("failed to create step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *StepStore) GetByID(ctx context.Context, id int64) (*domain.Step, error) {
	step := &domain.Step{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, step_order, step_name, is_mandatory, requires_photo
		FROM maintenance_steps WHERE id = ?
	`, id).Scan(&step.ID, &step.Order, &step.Name, &step.IsMandatory, &step.RequiresPhoto)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get step: %w", err)
	}

	return step, nil
}

// List returns the full catalog in checklist order.
func (s *StepStore) List(ctx context.Context) ([]*domain.Step, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, step_order, step_name, is_mandatory, requires_photo
		FROM maintenance_steps ORDER BY step_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var steps []*domain.Step
	for rows.Next() {
		step := &domain.Step{}
		if err := rows.Scan(&step.ID, &step.Order, &step.Name, &step.IsMandatory, &step.RequiresPhoto); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, step)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating steps: %w", err)
	}

	return steps, nil
}
