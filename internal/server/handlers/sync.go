// Package handlers содержит HTTP обработчики сервера синхронизации.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alawein/labsync/internal/models"
	"github.com/alawein/labsync/internal/server/storage"
	"github.com/alawein/labsync/pkg/api"
)

// DataStorage определяет интерфейс для работы с записями
type DataStorage interface {
	CreateEntity(ctx context.Context, entity *models.StoredEntity) (*models.StoredEntity, error)
	UpdateEntity(ctx context.Context, entity *models.StoredEntity, expectedVersion int64) (*models.StoredEntity, error)
	GetEntitiesByType(ctx context.Context, entityType string) ([]*models.StoredEntity, error)
	DeleteEntity(ctx context.Context, id string) error
}

// SyncHandler handles entity push and delete requests
type SyncHandler struct {
	logger  *slog.Logger
	storage DataStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage DataStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleCreate обрабатывает POST /api/sync/{type}
func (h *SyncHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handlePush(w, r, false)
}

// HandleUpdate обрабатывает PUT /api/sync/{type}
func (h *SyncHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.handlePush(w, r, true)
}

// handlePush принимает мутацию create или update. Обе возвращают
// подтвержденную серверную версию; несовпадение версий дает 409.
func (h *SyncHandler) handlePush(w http.ResponseWriter, r *http.Request, update bool) {
	ctx := r.Context()

	entityType, ok := h.pathEntityType(w, r)
	if !ok {
		return
	}

	var wire api.Entity
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if wire.ID == "" {
		h.writeError(w, http.StatusBadRequest, "entity id is required")
		return
	}
	if wire.Type != entityType {
		h.writeError(w, http.StatusBadRequest, "entity type does not match URL")
		return
	}
	if !json.Valid(wire.Payload) {
		h.writeError(w, http.StatusBadRequest, "payload is not valid JSON")
		return
	}

	stored := &models.StoredEntity{
		ID:           wire.ID,
		EntityType:   wire.Type,
		SimulationID: wire.SimulationID,
		Payload:      wire.Payload,
	}

	var saved *models.StoredEntity
	var err error
	if update {
		saved, err = h.storage.UpdateEntity(ctx, stored, wire.ServerVersion)
	} else {
		saved, err = h.storage.CreateEntity(ctx, stored)
	}

	if err != nil {
		if conflict, ok := storage.AsVersionConflict(err); ok {
			h.logger.Info("Version conflict",
				"entity_id", wire.ID,
				"client_version", wire.ServerVersion,
				"server_version", conflict.ServerVersion)
			h.writeConflict(w, conflict.ID, conflict.ServerVersion, "server version is newer")
			return
		}
		if errors.Is(err, storage.ErrEntityAlreadyExists) {
			// Повторный create того же ID трактуем как конфликт
			h.writeConflict(w, wire.ID, 0, "entity already exists")
			return
		}
		h.logger.Error("Failed to save entity", "entity_id", wire.ID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("Entity accepted",
		"entity_id", saved.ID,
		"entity_type", saved.EntityType,
		"server_version", saved.ServerVersion,
		"update", update)

	h.writeJSON(w, http.StatusOK, api.PushResponse{
		ID:            saved.ID,
		ServerVersion: saved.ServerVersion,
	})
}

// HandleDelete обрабатывает DELETE /api/sync/{type}/delete?id=
// Тело не передается, id приходит query-параметром.
func (h *SyncHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := h.pathEntityType(w, r); !ok {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	if err := h.storage.DeleteEntity(ctx, id); err != nil {
		h.logger.Error("Failed to delete entity", "entity_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("Entity deleted", "entity_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleList обрабатывает GET /api/sync/{type}
func (h *SyncHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entityType, ok := h.pathEntityType(w, r)
	if !ok {
		return
	}

	entities, err := h.storage.GetEntitiesByType(ctx, entityType)
	if err != nil {
		h.logger.Error("Failed to list entities", "entity_type", entityType, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	wire := make([]api.Entity, 0, len(entities))
	for _, entity := range entities {
		wire = append(wire, api.Entity{
			ID:            entity.ID,
			Type:          entity.EntityType,
			SimulationID:  entity.SimulationID,
			Payload:       entity.Payload,
			ServerVersion: entity.ServerVersion,
			CreatedAt:     entity.CreatedAt,
			UpdatedAt:     entity.UpdatedAt,
		})
	}

	h.writeJSON(w, http.StatusOK, wire)
}

// pathEntityType извлекает и проверяет сегмент {type} пути
func (h *SyncHandler) pathEntityType(w http.ResponseWriter, r *http.Request) (string, bool) {
	entityType := r.PathValue("type")
	if !models.EntityType(entityType).Valid() {
		h.writeError(w, http.StatusBadRequest, "unknown entity type")
		return "", false
	}
	return entityType, true
}

func (h *SyncHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *SyncHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: msg})
}

func (h *SyncHandler) writeConflict(w http.ResponseWriter, id string, serverVersion int64, msg string) {
	h.writeJSON(w, http.StatusConflict, api.ConflictResponse{
		ID:            id,
		ServerVersion: serverVersion,
		Message:       msg,
	})
}
