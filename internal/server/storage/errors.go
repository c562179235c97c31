package storage

import (
	"errors"
	"fmt"
)

// Common storage errors
var (
	// ErrEntityNotFound indicates that the entity was not found in storage
	ErrEntityNotFound = errors.New("entity not found")

	// ErrEntityAlreadyExists indicates that an entity with this ID already exists
	ErrEntityAlreadyExists = errors.New("entity already exists")
)

// VersionConflictError indicates that the stored server version moved
// ahead of the version known to the client.
type VersionConflictError struct {
	ID            string
	ServerVersion int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict for entity %s: server version is %d", e.ID, e.ServerVersion)
}

// AsVersionConflict extracts a VersionConflictError from an error chain
func AsVersionConflict(err error) (*VersionConflictError, bool) {
	var conflict *VersionConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
