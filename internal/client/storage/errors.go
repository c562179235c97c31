package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidEntityType indicates an unknown entity type
	ErrInvalidEntityType = errors.New("invalid entity type")
)
