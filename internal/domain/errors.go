package domain

import "errors"

// Caller-facing failures of the workflow engine. Transient store errors are
// wrapped and surfaced as-is; retry is the caller's decision.
var (
	// ErrUnknownStep is returned when a referenced step is not in the catalog.
	ErrUnknownStep = errors.New("step not in maintenance catalog")

	// ErrMissingRequiredPhoto is returned when a step that requires photo
	// evidence is completed with none attached.
	ErrMissingRequiredPhoto = errors.New("step requires a photo before completion")

	// ErrMotorNotFound is returned when the referenced motor does not exist.
	ErrMotorNotFound = errors.New("motor not found")

	// ErrStepOutOfOrder is returned by the completion gate only when the
	// sequential policy is enabled and the step is not the current one.
	ErrStepOutOfOrder = errors.New("step is not the current checklist step")

	// ErrInvalidCredentials is returned on failed technician login.
	ErrInvalidCredentials = errors.New("invalid phone or password")
)
