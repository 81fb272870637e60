package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// unknownTechnician is the display name used when a completion references a
// technician that no longer resolves.
const unknownTechnician = "Unknown"

// BuildReport assembles the read-only report document for one motor:
// header attributes plus completed steps only, in catalog order (an
// out-of-order completion still appears at its catalog position), each with
// its technician display name and photo URLs in upload order. The
// aggregator never mutates stored state.
func (s *MaintenanceService) BuildReport(ctx context.Context, motorID string) (*domain.Report, error) {
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

	byStep := make(map[int64]*domain.Completion, len(completions))
	for _, c := range completions {
		byStep[c.StepID] = c
	}

	names := make(map[string]string)
	reportSteps := make([]*domain.ReportStep, 0, len(steps))
	for _, step := range steps {
		c, ok := byStep[step.ID]
		if !ok || !c.Completed {
			continue
		}

		var completedAt time.Time
		if c.CompletedAt != nil {
			completedAt = *c.CompletedAt
		}

		urls := make([]string, 0, len(photos[c.ID]))
		for _, p := range photos[c.ID] {
			urls = append(urls, p.ImageURL)
		}

		reportSteps = append(reportSteps, &domain.ReportStep{
			StepOrder:      step.Order,
			StepName:       step.Name,
			CompletedAt:    completedAt,
			TechnicianName: s.technicianName(ctx, names, c.TechnicianID),
			PhotoURLs:      urls,
		})
	}

	return &domain.Report{
		MotorID:     motor.ID,
		MotorName:   motor.Name,
		ShipName:    motor.ShipName,
		PowerKW:     motor.PowerKW,
		RPM:         motor.RPM,
		Notes:       motor.Notes,
		GeneratedAt: s.now(),
		Steps:       reportSteps,
	}, nil
}

// technicianName resolves a technician id to a display name, caching
// lookups and falling back to the unknown label for nil or stale ids.
func (s *MaintenanceService) technicianName(ctx context.Context, cache map[string]string, id *string) string {
	if id == nil {
		return unknownTechnician
	}
	if name, ok := cache[*id]; ok {
		return name
	}

	name := unknownTechnician
	tech, err := s.technicians.GetByID(ctx, *id)
	if err != nil {
		s.logger.Warn("technician lookup failed", "technician_id", *id, "error", err)
	} else if tech != nil {
		name = tech.Name
	}

	cache[*id] = name
	return name
}
