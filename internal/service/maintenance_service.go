package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// stepCatalog is the subset of store.StepStore that MaintenanceService requires.
type stepCatalog interface {
	List(ctx context.Context) ([]*domain.Step, error)
	GetByID(ctx context.Context, id int64) (*domain.Step, error)
}

// completionRepository is the subset of store.CompletionStore that MaintenanceService requires.
type completionRepository interface {
	Get(ctx context.Context, motorID string, stepID int64) (*domain.Completion, error)
	ListByMotor(ctx context.Context, motorID string) ([]*domain.Completion, error)
	EnsureExists(ctx context.Context, motorID string, stepID int64) (*domain.Completion, error)
	MarkCompleted(ctx context.Context, motorID string, stepID int64, technicianID string, at time.Time) (*domain.Completion, error)
}

// photoRepository is the subset of store.PhotoStore that MaintenanceService requires.
type photoRepository interface {
	Append(ctx context.Context, completionID int64, imageURL string) (*domain.Photo, error)
	ListByMotor(ctx context.Context, motorID string) (map[int64][]*domain.Photo, error)
	CountByCompletion(ctx context.Context, completionID int64) (int, error)
}

// motorRepository is the subset of store.MotorStore that MaintenanceService requires.
type motorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Motor, error)
}

// technicianRepository is the subset of store.TechnicianStore that MaintenanceService requires.
type technicianRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Technician, error)
}

// auditSink appends action entries. Failures are logged and swallowed.
type auditSink interface {
	Append(ctx context.Context, motorID string, stepID int64, technicianID, action string) error
}

// MaintenanceService is the maintenance workflow engine: progression
// resolution, the completion gate, evidence attachment, and report
// aggregation over the checklist catalog and per-motor records.
type MaintenanceService struct {
	steps       stepCatalog
	completions completionRepository
	photos      photoRepository
	motors      motorRepository
	technicians technicianRepository
	audit       auditSink
	logger      *slog.Logger

	// sequential rejects completion of any step other than the current
	// one. Off by default: ordering is a presentation concern and the
	// gate completes steps in any order.
	sequential bool

	now func() time.Time
}

// Option configures a MaintenanceService.
type Option func(*MaintenanceService)

// WithSequentialPolicy makes the completion gate reject steps that are not
// the current checklist step.
func WithSequentialPolicy(enabled bool) Option {
	return func(s *MaintenanceService) { s.sequential = enabled }
}

func NewMaintenanceService(
	steps stepCatalog,
	completions completionRepository,
	photos photoRepository,
	motors motorRepository,
	technicians technicianRepository,
	audit auditSink,
	logger *slog.Logger,
	opts ...Option,
) *MaintenanceService {
	s := &MaintenanceService{
		steps:       steps,
		completions: completions,
		photos:      photos,
		motors:      motors,
		technicians: technicians,
		audit:       audit,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
