package data

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawein/labsync/internal/client/storage/boltdb"
	"github.com/alawein/labsync/internal/models"
)

func newTestService(t *testing.T) (Service, *boltdb.Storage) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "labsync-client.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return NewService(store, store), store
}

func TestCreateEntity(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entity, err := svc.CreateEntity(ctx, models.EntityTypeSimulation, "", json.RawMessage(`{"grid":128}`))
	require.NoError(t, err)
	require.NotNil(t, entity)

	assert.NotEmpty(t, entity.ID)
	assert.Equal(t, models.SyncStatusPending, entity.SyncStatus)
	assert.Equal(t, int64(1), entity.LocalVersion)
	assert.Zero(t, entity.ServerVersion)

	// Запись сохранена локально
	stored, err := store.GetEntity(ctx, models.EntityTypeSimulation, entity.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// Ровно один элемент очереди на мутацию
	items, err := store.GetQueueItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ActionCreate, items[0].Action)
	assert.Equal(t, entity.ID, items[0].EntityID)
	assert.Equal(t, 2, items[0].Priority)
}

func TestCreateEntity_InvalidType(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateEntity(context.Background(), models.EntityType("bogus"), "", nil)
	assert.Error(t, err)
}

func TestUpdateEntity(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entity, err := svc.CreateEntity(ctx, models.EntityTypeSimulation, "", json.RawMessage(`{"grid":128}`))
	require.NoError(t, err)

	updated, err := svc.UpdateEntity(ctx, models.EntityTypeSimulation, entity.ID, json.RawMessage(`{"grid":256}`))
	require.NoError(t, err)

	// Локальная версия монотонно растёт
	assert.Equal(t, int64(2), updated.LocalVersion)
	assert.Equal(t, models.SyncStatusPending, updated.SyncStatus)

	// По элементу очереди на каждую мутацию: create + update
	items, err := store.GetQueueItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpdateEntity_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateEntity(context.Background(), models.EntityTypeSimulation, "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteEntity(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	entity, err := svc.CreateEntity(ctx, models.EntityTypeSimulation, "", json.RawMessage(`{"grid":128}`))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntity(ctx, models.EntityTypeSimulation, entity.ID))

	// Запись удалена локально сразу (оптимистично)
	stored, err := store.GetEntity(ctx, models.EntityTypeSimulation, entity.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	items, err := store.GetQueueItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	var deleteItem *models.SyncQueueItem
	for _, item := range items {
		if item.Action == models.ActionDelete {
			deleteItem = item
		}
	}
	require.NotNil(t, deleteItem)
	assert.Equal(t, 1, deleteItem.Priority)
	assert.Nil(t, deleteItem.Payload)
}

func TestListEntities(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateEntity(ctx, models.EntityTypeSimulation, "", json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	_, err = svc.CreateEntity(ctx, models.EntityTypeSimulation, "", json.RawMessage(`{"b":2}`))
	require.NoError(t, err)

	entities, err := svc.ListEntities(ctx, models.EntityTypeSimulation)
	require.NoError(t, err)
	assert.Len(t, entities, 2)
}
