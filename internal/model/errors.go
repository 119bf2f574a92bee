package model

import "errors"

// Sentinel errors for simulation preconditions.
// Use errors.Is() to check for specific conditions; drivers wrap them with detail.
var (
	// ErrInvalidParameterCount indicates the parameter vector does not match the model arity.
	ErrInvalidParameterCount = errors.New("model: invalid parameter count")

	// ErrLengthMismatch indicates rainfall and evapotranspiration series differ in length.
	ErrLengthMismatch = errors.New("model: climate series length mismatch")

	// ErrEmptySeries indicates the climate series hold no timestep.
	ErrEmptySeries = errors.New("model: empty climate series")

	// ErrInvalidBufferSize indicates a unit hydrograph buffer is shorter than ceil(k*X4).
	ErrInvalidBufferSize = errors.New("model: unit hydrograph buffer too short")

	// ErrInvalidStateSize indicates the store vector does not match the model topology.
	ErrInvalidStateSize = errors.New("model: invalid state size")

	// ErrInvalidParameter indicates a parameter value the equations cannot use (X4 <= 0).
	ErrInvalidParameter = errors.New("model: invalid parameter value")

	// ErrUnknownModel indicates a name that is not in the registry.
	ErrUnknownModel = errors.New("model: unknown model")
)
