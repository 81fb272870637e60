package service

import (
	"context"
	"fmt"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// CompleteStep validates and commits a completion attempt for one
// (motor, step) pair. Preconditions, in order: the step must exist in the
// catalog; an already-completed step is an idempotent no-op returning the
// existing record; a step that requires a photo must have at least one
// attached. On success the record is upserted to completed with the given
// technician and the current time, and an audit entry is appended
// best-effort.
func (s *MaintenanceService) CompleteStep(ctx context.Context, motorID string, stepID int64, technicianID string) (*domain.Completion, error) {
	step, err := s.steps.GetByID(ctx, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	if step == nil {
		return nil, domain.ErrUnknownStep
	}

	existing, err := s.completions.Get(ctx, motorID, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}
	if existing != nil && existing.Completed {
		s.logger.Debug("step already completed", "motor_id", motorID, "step_id", stepID)
		return existing, nil
	}

	if step.RequiresPhoto {
		count := 0
		if existing != nil {
			count, err = s.photos.CountByCompletion(ctx, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to count photos: %w", err)
			}
		}
		if count == 0 {
			return nil, domain.ErrMissingRequiredPhoto
		}
	}

	if s.sequential {
		if err := s.checkSequential(ctx, motorID, step); err != nil {
			return nil, err
		}
	}

	record, err := s.completions.MarkCompleted(ctx, motorID, stepID, technicianID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark completion: %w", err)
	}

	action := fmt.Sprintf("step completed: %s", step.Name)
	if err := s.audit.Append(ctx, motorID, stepID, technicianID, action); err != nil {
		// Logging is advisory; the completion stands.
		s.logger.Warn("audit append failed", "motor_id", motorID, "step_id", stepID, "error", err)
	}

	s.logger.Info("step completed", "motor_id", motorID, "step_id", stepID, "technician_id", technicianID)
	return record, nil
}

// checkSequential rejects the attempt unless step is the first not-yet-
// completed step in catalog order.
func (s *MaintenanceService) checkSequential(ctx context.Context, motorID string, step *domain.Step) error {
	steps, err := s.steps.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list steps: %w", err)
	}

	completions, err := s.completions.ListByMotor(ctx, motorID)
	if err != nil {
		return fmt.Errorf("failed to list completions: %w", err)
	}

	progress := BuildProgress(nil, steps, completions, nil)
	current := progress.CurrentStep()
	if current == nil || current.Step.ID != step.ID {
		return domain.ErrStepOutOfOrder
	}
	return nil
}
