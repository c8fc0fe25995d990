package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound           = "not found"
	ErrMsgCapacityExhausted  = "no spots available"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgForbidden          = "forbidden"
	ErrMsgStoreFailure       = "store failure"
	ErrMsgUnauthenticated    = "unauthenticated"
	ErrMsgTxClosed           = "tx is closed"
	ErrMsgPublisherSaturated = "publish queue is full"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound covers absent or inactive spots and absent or foreign bookings
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrCapacityExhausted is returned when no unit was available at mutation time
	ErrCapacityExhausted = errors.New(ErrMsgCapacityExhausted)

	// ErrInvalidInput covers malformed capacity, coordinates and names
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrForbidden is returned to non-admins attempting admin operations
	ErrForbidden = errors.New(ErrMsgForbidden)

	// ErrStoreFailure wraps any store error, including timeouts
	ErrStoreFailure = errors.New(ErrMsgStoreFailure)

	// ErrUnauthenticated is returned when a credential cannot be verified
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	// ErrPublisherSaturated is logged when a snapshot publication is dropped
	ErrPublisherSaturated = errors.New(ErrMsgPublisherSaturated)
)
