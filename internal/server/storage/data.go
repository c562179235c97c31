package storage

import (
	"context"

	"github.com/alawein/labsync/internal/models"
)

// DataStorage defines interface for server-side entity persistence
type DataStorage interface {
	// CreateEntity inserts a new entity with server version 1.
	// Returns ErrEntityAlreadyExists if the ID is already taken.
	CreateEntity(ctx context.Context, entity *models.StoredEntity) (*models.StoredEntity, error)

	// UpdateEntity replaces the payload of an existing entity and
	// increments the server version. expectedVersion is the server
	// version the client last saw; a mismatch returns
	// VersionConflictError. Отсутствующая запись вставляется заново:
	// клиент мог потерять подтверждение своего create.
	UpdateEntity(ctx context.Context, entity *models.StoredEntity, expectedVersion int64) (*models.StoredEntity, error)

	// GetEntity retrieves a single entity by ID
	// Returns ErrEntityNotFound if the entity doesn't exist
	GetEntity(ctx context.Context, id string) (*models.StoredEntity, error)

	// GetEntitiesByType retrieves all entities of the given type
	// Returns empty slice if no entities found
	GetEntitiesByType(ctx context.Context, entityType string) ([]*models.StoredEntity, error)

	// DeleteEntity removes an entity. Deleting a missing entity is
	// not an error, повтор после потерянного ответа должен пройти.
	DeleteEntity(ctx context.Context, id string) error
}
