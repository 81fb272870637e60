package service

import (
	"context"
	"fmt"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// AttachPhoto records photo evidence for one (motor, step) pair. The
// completion row is lazily created with completed=false when absent, so
// evidence can precede completion. URLs are not deduplicated or validated;
// the blob store already made the image durable.
func (s *MaintenanceService) AttachPhoto(ctx context.Context, motorID string, stepID int64, imageURL string) (*domain.Photo, error) {
	step, err := s.steps.GetByID(ctx, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	if step == nil {
		return nil, domain.ErrUnknownStep
	}

	record, err := s.completions.EnsureExists(ctx, motorID, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure completion row: %w", err)
	}

	photo, err := s.photos.Append(ctx, record.ID, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to append photo: %w", err)
	}

	s.logger.Info("photo attached", "motor_id", motorID, "step_id", stepID, "photo_id", photo.ID)
	return photo, nil
}
