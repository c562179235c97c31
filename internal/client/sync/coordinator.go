// Package sync реализует координатор синхронизации: разбор персистентной
// очереди отложенных мутаций против REST сервера с ограниченными
// повторами и учётом конфликтов.
package sync

import (
	"context"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	httpClient "github.com/alawein/labsync/internal/client/api"
	"github.com/alawein/labsync/internal/client/storage"
	"github.com/alawein/labsync/internal/models"
	"github.com/alawein/labsync/pkg/api"
)

// DrainResult contains the outcome of one queue drain pass
type DrainResult struct {
	Synced int // успешно отправленных элементов
	Failed int // элементов, завершившихся ошибкой в этом проходе
}

// OnlineFunc сообщает, доступен ли сервер. nil означает "всегда онлайн".
type OnlineFunc func() bool

// Coordinator drains the persisted sync queue against the server.
// Единственный владелец флага "синхронизация уже идёт": повторный
// вызов Drain во время работающего прохода - no-op.
type Coordinator struct {
	apiClient httpClient.ClientAPI
	entities  storage.EntityStore
	queue     storage.QueueStore
	metadata  storage.MetadataStore
	online    OnlineFunc
	logger    *slog.Logger
	bus       *eventBus
	now       func() time.Time
	syncing   atomic.Bool
}

// NewCoordinator creates a new sync coordinator
func NewCoordinator(
	apiClient httpClient.ClientAPI,
	entities storage.EntityStore,
	queue storage.QueueStore,
	metadata storage.MetadataStore,
	online OnlineFunc,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		apiClient: apiClient,
		entities:  entities,
		queue:     queue,
		metadata:  metadata,
		online:    online,
		logger:    logger,
		bus:       newEventBus(),
		now:       time.Now,
	}
}

// Subscribe registers a handler for the given event type and returns
// an unsubscribe function.
func (c *Coordinator) Subscribe(eventType EventType, handler Handler) func() {
	return c.bus.subscribe(eventType, handler)
}

// GetQueuedItems returns queued items sorted in drain order
func (c *Coordinator) GetQueuedItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	items, err := c.queue.GetQueueItems(ctx)
	if err != nil {
		return nil, err
	}
	sortQueueItems(items)
	return items, nil
}

// GetPendingCount returns the number of queued items
func (c *Coordinator) GetPendingCount(ctx context.Context) (int, error) {
	return c.queue.CountQueueItems(ctx)
}

// Drain performs one full pass over the queue in priority order.
// 1. Guard: если проход уже идёт или клиент офлайн - немедленный no-op.
// 2. Элементы сортируются по приоритету: delete перед create перед update.
// 3. Успех удаляет элемент; неудача ре-персистит его до исчерпания
//    бюджета попыток, после чего сущность помечается статусом error.
func (c *Coordinator) Drain(ctx context.Context) (*DrainResult, error) {
	result := &DrainResult{}

	// Кооперативный single-flight: перекрывающиеся проходы не гоняются
	// за одной очередью
	if !c.syncing.CompareAndSwap(false, true) {
		c.logger.Debug("Drain already in flight, skipping")
		return result, nil
	}
	defer c.syncing.Store(false)

	if c.online != nil && !c.online() {
		c.logger.Debug("Client is offline, skipping drain")
		return result, nil
	}

	c.bus.publish(Event{Type: EventSyncStart, At: c.now()})

	items, err := c.queue.GetQueueItems(ctx)
	if err != nil {
		c.bus.publish(Event{Type: EventSyncError, At: c.now(), Error: err.Error()})
		return nil, err
	}

	sortQueueItems(items)

	c.logger.Info("Starting queue drain", "items", len(items))

	for _, item := range items {
		if err := c.attempt(ctx, item); err != nil {
			c.logger.Warn("Queue item attempt failed",
				"item_id", item.ID,
				"entity_id", item.EntityID,
				"action", item.Action,
				"attempts", item.Attempts,
				"error", err)
			result.Failed++
			continue
		}
		result.Synced++
	}

	c.bus.publish(Event{
		Type:   EventSyncComplete,
		At:     c.now(),
		Synced: result.Synced,
		Failed: result.Failed,
	})

	// Фиксируем время завершения прохода; ошибка сохранения не
	// прерывает синхронизацию
	if err := c.metadata.SaveLastSyncTime(ctx, c.now()); err != nil {
		c.logger.Warn("Failed to save last sync time", "error", err)
	}

	c.logger.Info("Queue drain completed", "synced", result.Synced, "failed", result.Failed)

	return result, nil
}

// attempt выполняет одну попытку отправки элемента очереди
func (c *Coordinator) attempt(ctx context.Context, item *models.SyncQueueItem) error {
	var err error

	switch item.Action {
	case models.ActionDelete:
		err = c.apiClient.DeleteEntity(ctx, string(item.EntityType), item.EntityID)
		if err == nil {
			return c.queue.RemoveQueueItem(ctx, item.ID)
		}
	default:
		err = c.pushEntity(ctx, item)
		if err == nil {
			return nil
		}
	}

	// Конфликт версий терминален: повторная отправка его не разрешит
	if conflict, ok := httpClient.AsConflict(err); ok {
		return c.recordConflict(ctx, item, conflict)
	}

	return c.recordFailure(ctx, item, err)
}

// pushEntity отправляет create/update мутацию и проставляет
// подтвержденную серверную ревизию на локальной записи
func (c *Coordinator) pushEntity(ctx context.Context, item *models.SyncQueueItem) error {
	entity, err := c.entities.GetEntity(ctx, item.EntityType, item.EntityID)
	if err != nil {
		return err
	}
	if entity == nil {
		// Запись удалена локально после постановки в очередь:
		// мутация потеряла смысл, элемент снимается без отправки
		c.logger.Debug("Entity gone before push, dropping queue item",
			"item_id", item.ID, "entity_id", item.EntityID)
		return c.queue.RemoveQueueItem(ctx, item.ID)
	}

	// pending -> syncing
	entity.SyncStatus = models.SyncStatusSyncing
	if err := c.entities.SaveEntity(ctx, entity); err != nil {
		return err
	}

	wire := toWireEntity(entity)

	var resp *api.PushResponse
	if item.Action == models.ActionCreate {
		resp, err = c.apiClient.CreateEntity(ctx, wire)
	} else {
		resp, err = c.apiClient.UpdateEntity(ctx, wire)
	}
	if err != nil {
		return err
	}

	// syncing -> synced
	entity.MarkSynced(resp.ServerVersion)
	if err := c.entities.SaveEntity(ctx, entity); err != nil {
		return err
	}

	return c.queue.RemoveQueueItem(ctx, item.ID)
}

// recordFailure учитывает неудачную попытку: ре-персист до исчерпания
// бюджета, затем элемент снимается навсегда и сущность помечается error
func (c *Coordinator) recordFailure(ctx context.Context, item *models.SyncQueueItem, cause error) error {
	item.Attempts++
	item.LastAttempt = c.now()

	if !item.Exhausted() {
		// Попытки остались - элемент вернется в следующем проходе
		if err := c.queue.SaveQueueItem(ctx, item); err != nil {
			c.logger.Error("Failed to re-persist queue item", "item_id", item.ID, "error", err)
		}
		return cause
	}

	if err := c.queue.RemoveQueueItem(ctx, item.ID); err != nil {
		c.logger.Error("Failed to remove exhausted queue item", "item_id", item.ID, "error", err)
	}

	c.markEntityError(ctx, item, cause.Error())

	return cause
}

// recordConflict снимает элемент, помечает сущность и публикует событие conflict
func (c *Coordinator) recordConflict(ctx context.Context, item *models.SyncQueueItem, conflict *httpClient.ConflictError) error {
	if err := c.queue.RemoveQueueItem(ctx, item.ID); err != nil {
		c.logger.Error("Failed to remove conflicted queue item", "item_id", item.ID, "error", err)
	}

	resolution := &models.ConflictResolution{
		DetectedAt:    c.now(),
		EntityType:    item.EntityType,
		EntityID:      item.EntityID,
		ServerVersion: conflict.ServerVersion,
	}

	entity, err := c.entities.GetEntity(ctx, item.EntityType, item.EntityID)
	if err == nil && entity != nil {
		resolution.LocalVersion = entity.LocalVersion
	}

	c.markEntityError(ctx, item, conflict.Error())

	c.bus.publish(Event{Type: EventConflict, At: c.now(), Conflict: resolution})

	return conflict
}

// markEntityError помечает владеющую сущность терминальной ошибкой
func (c *Coordinator) markEntityError(ctx context.Context, item *models.SyncQueueItem, msg string) {
	entity, err := c.entities.GetEntity(ctx, item.EntityType, item.EntityID)
	if err != nil || entity == nil {
		// Сущности уже нет (например, delete) - помечать нечего
		return
	}

	entity.MarkError(msg)
	if err := c.entities.SaveEntity(ctx, entity); err != nil {
		c.logger.Error("Failed to mark entity error", "entity_id", item.EntityID, "error", err)
	}
}

// sortQueueItems сортирует элементы в порядке разбора: по приоритету
// (delete=1, create=2, update=3), затем по времени постановки
func sortQueueItems(items []*models.SyncQueueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		return items[i].EnqueuedAt.Before(items[j].EnqueuedAt)
	})
}

// toWireEntity конвертирует локальную запись в wire формат
func toWireEntity(entity *models.SyncableEntity) *api.Entity {
	return &api.Entity{
		ID:            entity.ID,
		Type:          string(entity.Type),
		SimulationID:  entity.SimulationID,
		Payload:       entity.Payload,
		LocalVersion:  entity.LocalVersion,
		ServerVersion: entity.ServerVersion,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}
