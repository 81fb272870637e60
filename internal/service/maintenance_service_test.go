package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/oguzatay/motorcheck/internal/db"
	"github.com/oguzatay/motorcheck/internal/domain"
	"github.com/oguzatay/motorcheck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEngine bundles a MaintenanceService backed by in-memory sqlite with
// direct store access and a seeded motor and technician.
type testEngine struct {
	svc         *MaintenanceService
	db          *sql.DB
	steps       *store.StepStore
	completions *store.CompletionStore
	photos      *store.PhotoStore
	motors      *store.MotorStore
	techs       *store.TechnicianStore
	audit       *store.AuditStore
	motor       *domain.Motor
	tech        *domain.Technician
}

func newTestEngine(t *testing.T, opts ...Option) *testEngine {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	e := &testEngine{
		db:          d,
		steps:       store.NewStepStore(d),
		completions: store.NewCompletionStore(d),
		photos:      store.NewPhotoStore(d),
		motors:      store.NewMotorStore(d),
		techs:       store.NewTechnicianStore(d),
		audit:       store.NewAuditStore(d),
	}

	ctx := context.Background()
	ship, err := e.motors.CreateShip(ctx, "MV Karadeniz")
	require.NoError(t, err)
	e.motor, err = e.motors.Create(ctx, ship.ID, "Main Engine Cooling Pump", 75.5, 1450, "port side")
	require.NoError(t, err)
	e.tech, err = e.techs.Create(ctx, "Ali Demir", "+905551112233", "hash")
	require.NoError(t, err)

	e.svc = NewMaintenanceService(e.steps, e.completions, e.photos, e.motors, e.techs, e.audit, slog.Default(), opts...)
	return e
}

type catalogStep struct {
	order         int
	name          string
	isMandatory   bool
	requiresPhoto bool
}

func (e *testEngine) seedCatalog(t *testing.T, defs ...catalogStep) []*domain.Step {
	t.Helper()
	steps := make([]*domain.Step, 0, len(defs))
	for _, def := range defs {
		step, err := e.steps.Create(context.Background(), def.order, def.name, def.isMandatory, def.requiresPhoto)
		require.NoError(t, err)
		steps = append(steps, step)
	}
	return steps
}

// defaultCatalog is a three-step checklist where only the last step
// requires a photo.
func (e *testEngine) defaultCatalog(t *testing.T) []*domain.Step {
	t.Helper()
	return e.seedCatalog(t,
		catalogStep{order: 1, name: "Disconnect power supply", isMandatory: true},
		catalogStep{order: 2, name: "Remove terminal box cover"},
		catalogStep{order: 3, name: "Megger test windings", requiresPhoto: true},
	)
}

// failingAudit always errors; the gate must treat that as advisory.
type failingAudit struct{}

func (failingAudit) Append(context.Context, string, int64, string, string) error {
	return errors.New("audit sink unavailable")
}
