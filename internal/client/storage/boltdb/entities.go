package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/alawein/labsync/internal/client/storage"
	"github.com/alawein/labsync/internal/models"
)

// SaveEntity stores or updates an entity in its collection (upsert by ID)
func (s *Storage) SaveEntity(ctx context.Context, entity *models.SyncableEntity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if !entity.Type.Valid() {
		return fmt.Errorf("%w: %q", storage.ErrInvalidEntityType, entity.Type)
	}

	// Сериализуем entity в JSON
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(entity.Type.Collection()))
		if bucket == nil {
			return fmt.Errorf("collection bucket not found: %s", entity.Type.Collection())
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(entity.ID), data); err != nil {
			return fmt.Errorf("failed to save entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetEntity retrieves an entity by type and ID.
// Отсутствие записи не является ошибкой: возвращается (nil, nil).
func (s *Storage) GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.SyncableEntity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entity *models.SyncableEntity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(entityType.Collection()))
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		// Десериализуем
		entity = &models.SyncableEntity{}
		if err := json.Unmarshal(data, entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entity, nil
}

// GetAllEntities returns all entities of the given type (unordered)
func (s *Storage) GetAllEntities(ctx context.Context, entityType models.EntityType) ([]*models.SyncableEntity, error) {
	return s.scanEntities(entityType, func(e *models.SyncableEntity) bool {
		return true
	})
}

// GetEntitiesByStatus returns entities of the given type with the given sync status
func (s *Storage) GetEntitiesByStatus(ctx context.Context, entityType models.EntityType, status models.SyncStatus) ([]*models.SyncableEntity, error) {
	return s.scanEntities(entityType, func(e *models.SyncableEntity) bool {
		return e.SyncStatus == status
	})
}

// GetEntitiesBySimulation returns entities owned by the given simulation
func (s *Storage) GetEntitiesBySimulation(ctx context.Context, entityType models.EntityType, simulationID string) ([]*models.SyncableEntity, error) {
	return s.scanEntities(entityType, func(e *models.SyncableEntity) bool {
		return e.SimulationID == simulationID
	})
}

// GetEntitiesUpdatedSince returns entities of the given type modified after ts
func (s *Storage) GetEntitiesUpdatedSince(ctx context.Context, entityType models.EntityType, ts time.Time) ([]*models.SyncableEntity, error) {
	return s.scanEntities(entityType, func(e *models.SyncableEntity) bool {
		return e.UpdatedAt.After(ts)
	})
}

// DeleteEntity removes an entity.
// Идемпотентна: удаление отсутствующего ключа не является ошибкой.
func (s *Storage) DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(entityType.Collection()))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// scanEntities обходит коллекцию и возвращает записи, прошедшие фильтр.
// Записи сущностей других типов, живущие в общей коллекции settings,
// отфильтровываются по полю Type.
func (s *Storage) scanEntities(entityType models.EntityType, match func(*models.SyncableEntity) bool) ([]*models.SyncableEntity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entities []*models.SyncableEntity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(collectionBucket(entityType.Collection()))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entity models.SyncableEntity
			if err := json.Unmarshal(v, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}

			if entity.Type != entityType {
				return nil
			}
			if match(&entity) {
				entities = append(entities, &entity)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan entities: %w", err)
	}

	return entities, nil
}
