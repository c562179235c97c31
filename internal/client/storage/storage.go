// Package storage определяет интерфейсы локального хранилища клиента.
package storage

import (
	"context"
	"time"

	"github.com/alawein/labsync/internal/models"
)

//go:generate go tool moq -out entitystore_mock.go . EntityStore

// EntityStore defines interface for storing syncable entities on client.
// Все операции идемпотентны: повторный Save с тем же ключом оставляет
// одну запись, Delete отсутствующего ключа не является ошибкой.
type EntityStore interface {
	// SaveEntity stores or updates an entity in its collection (upsert by ID)
	SaveEntity(ctx context.Context, entity *models.SyncableEntity) error

	// GetEntity retrieves an entity by type and ID.
	// Returns (nil, nil) if the entity doesn't exist.
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.SyncableEntity, error)

	// GetAllEntities returns all entities of the given type (unordered)
	GetAllEntities(ctx context.Context, entityType models.EntityType) ([]*models.SyncableEntity, error)

	// GetEntitiesByStatus returns entities of the given type with the given sync status
	GetEntitiesByStatus(ctx context.Context, entityType models.EntityType, status models.SyncStatus) ([]*models.SyncableEntity, error)

	// GetEntitiesBySimulation returns entities owned by the given simulation
	GetEntitiesBySimulation(ctx context.Context, entityType models.EntityType, simulationID string) ([]*models.SyncableEntity, error)

	// GetEntitiesUpdatedSince returns entities of the given type modified after ts
	GetEntitiesUpdatedSince(ctx context.Context, entityType models.EntityType, ts time.Time) ([]*models.SyncableEntity, error)

	// DeleteEntity removes an entity; deleting a missing ID is not an error
	DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error

	// StorageQuota returns best-effort storage usage.
	// Degrades to an all-zero quota when usage cannot be determined.
	StorageQuota(ctx context.Context) (*Quota, error)
}

//go:generate go tool moq -out queuestore_mock.go . QueueStore

// QueueStore defines interface for the persisted sync queue
type QueueStore interface {
	// SaveQueueItem stores or re-persists a queue item (upsert by ID)
	SaveQueueItem(ctx context.Context, item *models.SyncQueueItem) error

	// GetQueueItems returns all queued items (unordered; caller sorts by priority)
	GetQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error)

	// RemoveQueueItem removes an item; removing a missing ID is not an error
	RemoveQueueItem(ctx context.Context, id string) error

	// CountQueueItems returns the number of queued items
	CountQueueItems(ctx context.Context) (int, error)
}

//go:generate go tool moq -out metadatastore_mock.go . MetadataStore

// MetadataStore defines interface for storing client sync metadata
type MetadataStore interface {
	// SaveLastSyncTime saves the completion time of the last successful drain
	SaveLastSyncTime(ctx context.Context, ts time.Time) error

	// GetLastSyncTime retrieves the completion time of the last successful drain.
	// Returns the zero time if no drain has completed yet.
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}

// Quota представляет best-effort оценку использования хранилища
type Quota struct {
	Used       int64   `json:"used"`       // занято, байт
	Total      int64   `json:"total"`      // бюджет хранилища, байт
	Percentage float64 `json:"percentage"` // занято в процентах от бюджета
}
