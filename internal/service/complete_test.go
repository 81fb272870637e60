package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/oguzatay/motorcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteStep(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	record, err := e.svc.CompleteStep(ctx, e.motor.ID, steps[0].ID, e.tech.ID)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	require.NotNil(t, record.CompletedAt)
	require.NotNil(t, record.TechnicianID)
	assert.Equal(t, e.tech.ID, *record.TechnicianID)
}

func TestCompleteStep_UnknownStep(t *testing.T) {
	e := newTestEngine(t)
	e.defaultCatalog(t)

	_, err := e.svc.CompleteStep(context.Background(), e.motor.ID, 99999, e.tech.ID)
	assert.ErrorIs(t, err, domain.ErrUnknownStep)
}

func TestCompleteStep_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	first, err := e.svc.CompleteStep(ctx, e.motor.ID, steps[0].ID, e.tech.ID)
	require.NoError(t, err)

	// A replay, even with a different technician, is a no-op success that
	// returns the existing record unchanged.
	other, err := e.techs.Create(ctx, "Mehmet Kaya", "+905554445566", "hash")
	require.NoError(t, err)

	again, err := e.svc.CompleteStep(ctx, e.motor.ID, steps[0].ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, *first.TechnicianID, *again.TechnicianID)
	assert.True(t, first.CompletedAt.Equal(*again.CompletedAt))
}

func TestCompleteStep_MissingRequiredPhoto(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	photoStep := steps[2]
	require.True(t, photoStep.RequiresPhoto)

	_, err := e.svc.CompleteStep(ctx, e.motor.ID, photoStep.ID, e.tech.ID)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredPhoto)

	// One attached photo satisfies the precondition.
	_, err = e.svc.AttachPhoto(ctx, e.motor.ID, photoStep.ID, "https://blob.example.com/megger.jpg")
	require.NoError(t, err)

	record, err := e.svc.CompleteStep(ctx, e.motor.ID, photoStep.ID, e.tech.ID)
	require.NoError(t, err)
	assert.True(t, record.Completed)
}

func TestCompleteStep_MandatoryAloneNeedsNoPhoto(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	mandatory := steps[0]
	require.True(t, mandatory.IsMandatory)
	require.False(t, mandatory.RequiresPhoto)

	_, err := e.svc.CompleteStep(ctx, e.motor.ID, mandatory.ID, e.tech.ID)
	assert.NoError(t, err)
}

func TestCompleteStep_NoOrderingByDefault(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	// Skipping ahead is allowed: ordering is the resolver's presentation
	// concern, not a gate precondition.
	record, err := e.svc.CompleteStep(ctx, e.motor.ID, steps[1].ID, e.tech.ID)
	require.NoError(t, err)
	assert.True(t, record.Completed)
}

func TestCompleteStep_SequentialPolicy(t *testing.T) {
	e := newTestEngine(t, WithSequentialPolicy(true))
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	_, err := e.svc.CompleteStep(ctx, e.motor.ID, steps[1].ID, e.tech.ID)
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)

	_, err = e.svc.CompleteStep(ctx, e.motor.ID, steps[0].ID, e.tech.ID)
	require.NoError(t, err)

	// After the first step completes, the second becomes current.
	_, err = e.svc.CompleteStep(ctx, e.motor.ID, steps[1].ID, e.tech.ID)
	assert.NoError(t, err)
}

func TestCompleteStep_WritesAuditEntry(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)
	ctx := context.Background()

	_, err := e.svc.CompleteStep(ctx, e.motor.ID, steps[0].ID, e.tech.ID)
	require.NoError(t, err)

	entries, err := e.audit.ListByMotor(ctx, e.motor.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.tech.ID, entries[0].TechnicianID)
	assert.Equal(t, "step completed: Disconnect power supply", entries[0].Action)
}

func TestCompleteStep_AuditFailureDoesNotBlock(t *testing.T) {
	e := newTestEngine(t)
	steps := e.defaultCatalog(t)

	svc := NewMaintenanceService(e.steps, e.completions, e.photos, e.motors, e.techs, failingAudit{}, slog.Default())

	record, err := svc.CompleteStep(context.Background(), e.motor.ID, steps[0].ID, e.tech.ID)
	require.NoError(t, err)
	assert.True(t, record.Completed)
}
