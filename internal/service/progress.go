package service

import (
	"context"
	"fmt"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// BuildProgress joins the ordered catalog with one motor's completion
// records and evidence. The checklist is treated as strictly sequential:
// the current index is the number of completed records, regardless of
// which later steps may already have rows. When every step is complete the
// index equals len(steps) and there is no current step.
func BuildProgress(motor *domain.Motor, steps []*domain.Step, completions []*domain.Completion, photos map[int64][]*domain.Photo) *domain.MotorProgress {
	byStep := make(map[int64]*domain.Completion, len(completions))
	completed := 0
	for _, c := range completions {
		byStep[c.StepID] = c
		if c.Completed {
			completed++
		}
	}

	statuses := make([]*domain.StepStatus, 0, len(steps))
	for _, step := range steps {
		status := &domain.StepStatus{Step: *step, State: domain.StateNotStarted}
		if c, ok := byStep[step.ID]; ok {
			status.Completion = c
			status.Photos = photos[c.ID]
			if c.Completed {
				status.State = domain.StateCompleted
			} else {
				status.State = domain.StateInProgress
			}
		}
		statuses = append(statuses, status)
	}

	return &domain.MotorProgress{
		Motor:        motor,
		Steps:        statuses,
		CurrentIndex: completed,
	}
}

// GetMotorProgress loads a motor's checklist state and resolves it into a
// progress view.
func (s *MaintenanceService) GetMotorProgress(ctx context.Context, motorID string) (*domain.MotorProgress, error) {
	motor, err := s.motors.GetByID(ctx, motorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get motor: %w", err)
	}
	if motor == nil {
		return nil, domain.ErrMotorNotFound
	}

	steps, err := s.steps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}

	completions, err := s.completions.ListByMotor(ctx, motorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	photos, err := s.photos.ListByMotor(ctx, motorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	return BuildProgress(motor, steps, completions, photos), nil
}
