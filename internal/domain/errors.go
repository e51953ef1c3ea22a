package domain

import "errors"

var (
	// ErrNotFound is returned when no check exists with the requested id.
	ErrNotFound = errors.New("check not found")

	// ErrSaveFailed is returned when a save or delete transaction could not
	// commit. The transaction is rolled back; no partial state is visible.
	ErrSaveFailed = errors.New("failed to save check")

	// ErrStorageUnavailable is returned on connection-level database failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
