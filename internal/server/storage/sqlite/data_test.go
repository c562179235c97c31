package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawein/labsync/internal/models"
	"github.com/alawein/labsync/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	return s, func() {
		require.NoError(t, s.Close())
	}
}

func newStoredEntity(entityType string) *models.StoredEntity {
	return &models.StoredEntity{
		ID:           uuid.New().String(),
		EntityType:   entityType,
		SimulationID: "sim-42",
		Payload:      []byte(`{"name":"spin chain","steps":1000}`),
	}
}

func TestDataStorage_CreateEntity(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entity := newStoredEntity("simulation")

	created, err := s.CreateEntity(ctx, entity)
	require.NoError(t, err)
	assert.Equal(t, entity.ID, created.ID)
	assert.Equal(t, "simulation", created.EntityType)
	assert.Equal(t, "sim-42", created.SimulationID)
	assert.Equal(t, int64(1), created.ServerVersion)
	assert.JSONEq(t, string(entity.Payload), string(created.Payload))
	assert.False(t, created.CreatedAt.IsZero())
}

func TestDataStorage_CreateEntity_Duplicate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entity := newStoredEntity("simulation")

	_, err := s.CreateEntity(ctx, entity)
	require.NoError(t, err)

	_, err = s.CreateEntity(ctx, entity)
	assert.ErrorIs(t, err, storage.ErrEntityAlreadyExists)
}

func TestDataStorage_UpdateEntity(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entity := newStoredEntity("simulation")
	created, err := s.CreateEntity(ctx, entity)
	require.NoError(t, err)

	entity.Payload = []byte(`{"name":"spin chain","steps":2000}`)

	updated, err := s.UpdateEntity(ctx, entity, created.ServerVersion)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.ServerVersion)
	assert.JSONEq(t, `{"name":"spin chain","steps":2000}`, string(updated.Payload))
}

func TestDataStorage_UpdateEntity_VersionConflict(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entity := newStoredEntity("simulation")
	created, err := s.CreateEntity(ctx, entity)
	require.NoError(t, err)

	// Другой клиент успел записать: версия на сервере уходит вперед
	_, err = s.UpdateEntity(ctx, entity, created.ServerVersion)
	require.NoError(t, err)

	// Обновление со старой версией отклоняется
	_, err = s.UpdateEntity(ctx, entity, created.ServerVersion)
	conflict, ok := storage.AsVersionConflict(err)
	require.True(t, ok)
	assert.Equal(t, entity.ID, conflict.ID)
	assert.Equal(t, int64(2), conflict.ServerVersion)
}

func TestDataStorage_UpdateEntity_MissingInserts(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entity := newStoredEntity("simulation")

	updated, err := s.UpdateEntity(ctx, entity, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ServerVersion)
}

func TestDataStorage_GetEntity_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetEntity(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestDataStorage_GetEntitiesByType(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		_, err := s.CreateEntity(ctx, newStoredEntity("simulation"))
		require.NoError(t, err)
	}
	_, err := s.CreateEntity(ctx, newStoredEntity("simulation_result"))
	require.NoError(t, err)

	simulations, err := s.GetEntitiesByType(ctx, "simulation")
	require.NoError(t, err)
	assert.Len(t, simulations, 3)

	results, err := s.GetEntitiesByType(ctx, "simulation_result")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	empty, err := s.GetEntitiesByType(ctx, "saved_state")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDataStorage_DeleteEntity(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entity := newStoredEntity("simulation")
	_, err := s.CreateEntity(ctx, entity)
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntity(ctx, entity.ID))

	_, err = s.GetEntity(ctx, entity.ID)
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	// Повторное удаление идемпотентно
	assert.NoError(t, s.DeleteEntity(ctx, entity.ID))
}
