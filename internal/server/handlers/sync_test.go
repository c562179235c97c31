package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawein/labsync/internal/server/storage/sqlite"
	"github.com/alawein/labsync/pkg/api"
)

// newSyncMux поднимает handler поверх in-memory SQLite с теми же
// паттернами маршрутов, что и боевой сервер
func newSyncMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := NewSyncHandler(logger, store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sync/{type}", handler.HandleList)
	mux.HandleFunc("POST /api/sync/{type}", handler.HandleCreate)
	mux.HandleFunc("PUT /api/sync/{type}", handler.HandleUpdate)
	mux.HandleFunc("DELETE /api/sync/{type}/delete", handler.HandleDelete)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func wireEntity(id string) api.Entity {
	return api.Entity{
		ID:           id,
		Type:         "simulation",
		SimulationID: "sim-42",
		Payload:      json.RawMessage(`{"name":"spin chain"}`),
		LocalVersion: 1,
	}
}

func TestSyncHandler_Create(t *testing.T) {
	mux := newSyncMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity("e-1"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.PushResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "e-1", resp.ID)
	assert.Equal(t, int64(1), resp.ServerVersion)
}

func TestSyncHandler_Create_DuplicateConflicts(t *testing.T) {
	mux := newSyncMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity("e-1"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity("e-1"))
	require.Equal(t, http.StatusConflict, w.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, "e-1", conflict.ID)
}

func TestSyncHandler_Update(t *testing.T) {
	mux := newSyncMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity("e-1"))
	require.Equal(t, http.StatusOK, w.Code)

	entity := wireEntity("e-1")
	entity.ServerVersion = 1
	entity.Payload = json.RawMessage(`{"name":"spin chain","steps":2000}`)

	w = doJSON(t, mux, http.MethodPut, "/api/sync/simulation", entity)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PushResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.ServerVersion)
}

func TestSyncHandler_Update_StaleVersionConflicts(t *testing.T) {
	mux := newSyncMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity("e-1"))
	require.Equal(t, http.StatusOK, w.Code)

	// Первый update двигает версию на 2
	entity := wireEntity("e-1")
	entity.ServerVersion = 1
	w = doJSON(t, mux, http.MethodPut, "/api/sync/simulation", entity)
	require.Equal(t, http.StatusOK, w.Code)

	// Повтор со старой версией получает 409 с актуальной версией
	w = doJSON(t, mux, http.MethodPut, "/api/sync/simulation", entity)
	require.Equal(t, http.StatusConflict, w.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, "e-1", conflict.ID)
	assert.Equal(t, int64(2), conflict.ServerVersion)
	assert.NotEmpty(t, conflict.Message)
}

func TestSyncHandler_Delete(t *testing.T) {
	mux := newSyncMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity("e-1"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodDelete, "/api/sync/simulation/delete?id=e-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Повторное удаление идемпотентно
	w = doJSON(t, mux, http.MethodDelete, "/api/sync/simulation/delete?id=e-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSyncHandler_Delete_RequiresID(t *testing.T) {
	mux := newSyncMux(t)

	w := doJSON(t, mux, http.MethodDelete, "/api/sync/simulation/delete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHandler_List(t *testing.T) {
	mux := newSyncMux(t)

	for _, id := range []string{"e-1", "e-2"} {
		w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", wireEntity(id))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, mux, http.MethodGet, "/api/sync/simulation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entities []api.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entities))
	assert.Len(t, entities, 2)

	w = doJSON(t, mux, http.MethodGet, "/api/sync/saved_state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entities))
	assert.Empty(t, entities)
}

func TestSyncHandler_BadRequests(t *testing.T) {
	mux := newSyncMux(t)

	t.Run("unknown entity type", func(t *testing.T) {
		w := doJSON(t, mux, http.MethodPost, "/api/sync/bogus", wireEntity("e-1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		entity := wireEntity("")
		w := doJSON(t, mux, http.MethodPost, "/api/sync/simulation", entity)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("type mismatch with URL", func(t *testing.T) {
		entity := wireEntity("e-1")
		w := doJSON(t, mux, http.MethodPost, "/api/sync/saved_state", entity)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/sync/simulation", bytes.NewReader([]byte("not json")))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
