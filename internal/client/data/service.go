// Package data выполняет оптимистичные локальные мутации: запись
// сначала сохраняется локально, затем ставится в очередь синхронизации.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alawein/labsync/internal/client/storage"
	"github.com/alawein/labsync/internal/models"
)

// Service определяет интерфейс для клиентского data сервиса
type Service interface {
	// CreateEntity creates an entity locally and enqueues a create action
	CreateEntity(ctx context.Context, entityType models.EntityType, simulationID string, payload json.RawMessage) (*models.SyncableEntity, error)

	// UpdateEntity mutates an entity locally and enqueues an update action
	UpdateEntity(ctx context.Context, entityType models.EntityType, id string, payload json.RawMessage) (*models.SyncableEntity, error)

	// DeleteEntity removes an entity locally and enqueues a delete action
	DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error

	// GetEntity retrieves an entity; returns (nil, nil) if absent
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.SyncableEntity, error)

	// ListEntities returns all entities of the given type
	ListEntities(ctx context.Context, entityType models.EntityType) ([]*models.SyncableEntity, error)
}

// service handles client-side data operations
type service struct {
	entities storage.EntityStore
	queue    storage.QueueStore
	now      func() time.Time
}

// NewService creates a new data service
func NewService(entities storage.EntityStore, queue storage.QueueStore) Service {
	return &service{
		entities: entities,
		queue:    queue,
		now:      time.Now,
	}
}

// CreateEntity creates an entity locally and enqueues a create action.
// Запись получает статус pending и localVersion=1; ровно один элемент
// очереди ставится на каждую мутацию.
func (s *service) CreateEntity(ctx context.Context, entityType models.EntityType, simulationID string, payload json.RawMessage) (*models.SyncableEntity, error) {
	if !entityType.Valid() {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidEntityType, entityType)
	}

	now := s.now()
	entity := &models.SyncableEntity{
		ID:           uuid.New().String(),
		Type:         entityType,
		SimulationID: simulationID,
		Payload:      payload,
		CreatedAt:    now,
		UpdatedAt:    now,
		LocalVersion: 1,
		SyncStatus:   models.SyncStatusPending,
	}

	// Сохраняем в локальное хранилище
	if err := s.entities.SaveEntity(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save entity: %w", err)
	}

	if err := s.enqueue(ctx, entity, models.ActionCreate); err != nil {
		return nil, err
	}

	return entity, nil
}

// UpdateEntity mutates an entity locally and enqueues an update action
func (s *service) UpdateEntity(ctx context.Context, entityType models.EntityType, id string, payload json.RawMessage) (*models.SyncableEntity, error) {
	entity, err := s.entities.GetEntity(ctx, entityType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	if entity == nil {
		return nil, fmt.Errorf("entity %s/%s not found", entityType, id)
	}

	// Локальная мутация: монотонный рост localVersion
	entity.Payload = payload
	entity.Touch(s.now())
	entity.SyncStatus = models.SyncStatusPending
	entity.SyncError = ""

	if err := s.entities.SaveEntity(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save entity: %w", err)
	}

	if err := s.enqueue(ctx, entity, models.ActionUpdate); err != nil {
		return nil, err
	}

	return entity, nil
}

// DeleteEntity removes an entity locally and enqueues a delete action.
// Удаление отсутствующей записи локально идемпотентно, но действие
// всё равно ставится в очередь: сервер мог видеть запись раньше.
func (s *service) DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error {
	if err := s.entities.DeleteEntity(ctx, entityType, id); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	item := &models.SyncQueueItem{
		ID:         uuid.New().String(),
		EntityType: entityType,
		EntityID:   id,
		Action:     models.ActionDelete,
		Priority:   models.ActionDelete.Priority(),
		EnqueuedAt: s.now(),
	}

	if err := s.queue.SaveQueueItem(ctx, item); err != nil {
		return fmt.Errorf("failed to enqueue delete: %w", err)
	}

	return nil
}

// GetEntity retrieves an entity; returns (nil, nil) if absent
func (s *service) GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.SyncableEntity, error) {
	return s.entities.GetEntity(ctx, entityType, id)
}

// ListEntities returns all entities of the given type
func (s *service) ListEntities(ctx context.Context, entityType models.EntityType) ([]*models.SyncableEntity, error) {
	return s.entities.GetAllEntities(ctx, entityType)
}

// enqueue ставит в очередь ровно один элемент на мутацию
func (s *service) enqueue(ctx context.Context, entity *models.SyncableEntity, action models.SyncAction) error {
	snapshot, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity snapshot: %w", err)
	}

	item := &models.SyncQueueItem{
		ID:         uuid.New().String(),
		EntityType: entity.Type,
		EntityID:   entity.ID,
		Action:     action,
		Payload:    snapshot,
		Priority:   action.Priority(),
		EnqueuedAt: s.now(),
	}

	if err := s.queue.SaveQueueItem(ctx, item); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", action, err)
	}

	return nil
}
