// Package apperrors defines the sentinel errors shared across layers.
package apperrors

import "errors"

// Validation errors represent malformed request input.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidDateRange indicates that the provided date range is malformed.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// ErrDataStoreUnavailable indicates that no collection could be reached at
// all. Partial fetch failures degrade to zeroed groups instead; only a total
// failure surfaces this error.
var ErrDataStoreUnavailable = errors.New("data store unavailable")
