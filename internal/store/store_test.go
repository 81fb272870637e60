package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/oguzatay/motorcheck/internal/db"
	"github.com/oguzatay/motorcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })
	return d
}

func createTestMotor(t *testing.T, d *sql.DB) *domain.Motor {
	t.Helper()
	motors := NewMotorStore(d)
	ctx := context.Background()

	ship, err := motors.CreateShip(ctx, "MV Karadeniz")
	require.NoError(t, err)

	motor, err := motors.Create(ctx, ship.ID, "Main Engine Cooling Pump", 75.5, 1450, "port side")
	require.NoError(t, err)
	return motor
}

func createTestStep(t *testing.T, d *sql.DB, order int, requiresPhoto bool) *domain.Step {
	t.Helper()
	steps := NewStepStore(d)

	step, err := steps.Create(context.Background(), order, "Inspect bearings", false, requiresPhoto)
	require.NoError(t, err)
	return step
}
