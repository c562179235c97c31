package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawein/labsync/internal/client/storage"
	"github.com/alawein/labsync/internal/models"
)

func testEntity(id string, entityType models.EntityType) *models.SyncableEntity {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.SyncableEntity{
		ID:           id,
		Type:         entityType,
		Payload:      json.RawMessage(`{"grid":128}`),
		CreatedAt:    now,
		UpdatedAt:    now,
		LocalVersion: 1,
		SyncStatus:   models.SyncStatusPending,
	}
}

func TestSaveEntity_And_GetEntity(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("sim-1", models.EntityTypeSimulation)
	require.NoError(t, store.SaveEntity(ctx, entity))

	got, err := store.GetEntity(ctx, models.EntityTypeSimulation, "sim-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.ID, got.ID)
	assert.Equal(t, entity.Payload, got.Payload)
	assert.Equal(t, entity.SyncStatus, got.SyncStatus)
}

func TestSaveEntity_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("sim-1", models.EntityTypeSimulation)
	require.NoError(t, store.SaveEntity(ctx, entity))
	require.NoError(t, store.SaveEntity(ctx, entity))

	// Повторный save с тем же ключом оставляет ровно одну запись
	all, err := store.GetAllEntities(ctx, models.EntityTypeSimulation)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveEntity_InvalidType(t *testing.T) {
	store := newTestStorage(t)

	entity := testEntity("x-1", models.EntityType("unknown"))
	err := store.SaveEntity(context.Background(), entity)
	assert.ErrorIs(t, err, storage.ErrInvalidEntityType)
}

func TestGetEntity_NotFound(t *testing.T) {
	store := newTestStorage(t)

	// Отсутствие записи - не ошибка
	got, err := store.GetEntity(context.Background(), models.EntityTypeSimulation, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllEntities_SharedCollection(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// user_settings и saved_state живут в одной коллекции settings
	require.NoError(t, store.SaveEntity(ctx, testEntity("set-1", models.EntityTypeUserSettings)))
	require.NoError(t, store.SaveEntity(ctx, testEntity("state-1", models.EntityTypeSavedState)))
	require.NoError(t, store.SaveEntity(ctx, testEntity("exp-1", models.EntityTypeExportData)))

	settings, err := store.GetAllEntities(ctx, models.EntityTypeUserSettings)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "set-1", settings[0].ID)

	states, err := store.GetAllEntities(ctx, models.EntityTypeSavedState)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "state-1", states[0].ID)
}

func TestGetEntitiesByStatus(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	pending := testEntity("sim-1", models.EntityTypeSimulation)
	synced := testEntity("sim-2", models.EntityTypeSimulation)
	synced.SyncStatus = models.SyncStatusSynced

	require.NoError(t, store.SaveEntity(ctx, pending))
	require.NoError(t, store.SaveEntity(ctx, synced))

	got, err := store.GetEntitiesByStatus(ctx, models.EntityTypeSimulation, models.SyncStatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sim-1", got[0].ID)
}

func TestGetEntitiesBySimulation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	res1 := testEntity("res-1", models.EntityTypeSimulationResult)
	res1.SimulationID = "sim-1"
	res2 := testEntity("res-2", models.EntityTypeSimulationResult)
	res2.SimulationID = "sim-2"

	require.NoError(t, store.SaveEntity(ctx, res1))
	require.NoError(t, store.SaveEntity(ctx, res2))

	got, err := store.GetEntitiesBySimulation(ctx, models.EntityTypeSimulationResult, "sim-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "res-1", got[0].ID)
}

func TestGetEntitiesUpdatedSince(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	old := testEntity("sim-1", models.EntityTypeSimulation)
	old.UpdatedAt = time.Now().Add(-time.Hour)
	fresh := testEntity("sim-2", models.EntityTypeSimulation)

	require.NoError(t, store.SaveEntity(ctx, old))
	require.NoError(t, store.SaveEntity(ctx, fresh))

	got, err := store.GetEntitiesUpdatedSince(ctx, models.EntityTypeSimulation, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sim-2", got[0].ID)
}

func TestDeleteEntity(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("sim-1", models.EntityTypeSimulation)
	require.NoError(t, store.SaveEntity(ctx, entity))

	require.NoError(t, store.DeleteEntity(ctx, models.EntityTypeSimulation, "sim-1"))

	got, err := store.GetEntity(ctx, models.EntityTypeSimulation, "sim-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Повторное удаление не является ошибкой
	assert.NoError(t, store.DeleteEntity(ctx, models.EntityTypeSimulation, "sim-1"))
}
