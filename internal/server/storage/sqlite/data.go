package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alawein/labsync/internal/models"
	"github.com/alawein/labsync/internal/server/storage"
)

// CreateEntity inserts a new entity with server version 1.
// Returns ErrEntityAlreadyExists if the ID is already taken.
func (s *Storage) CreateEntity(ctx context.Context, entity *models.StoredEntity) (*models.StoredEntity, error) {
	existing, err := s.GetEntity(ctx, entity.ID)
	if err != nil && !errors.Is(err, storage.ErrEntityNotFound) {
		return nil, fmt.Errorf("failed to check existing entity: %w", err)
	}
	if existing != nil {
		return nil, storage.ErrEntityAlreadyExists
	}

	now := time.Now()
	query := `
		INSERT INTO entities (
			id, entity_type, simulation_id, payload,
			server_version, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		entity.ID,
		entity.EntityType,
		entity.SimulationID,
		[]byte(entity.Payload),
		1,
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entity: %w", err)
	}

	return s.GetEntity(ctx, entity.ID)
}

// UpdateEntity replaces the payload of an existing entity and
// increments the server version. Несовпадение expectedVersion с
// хранимой версией означает, что другой клиент успел записать раньше.
func (s *Storage) UpdateEntity(ctx context.Context, entity *models.StoredEntity, expectedVersion int64) (*models.StoredEntity, error) {
	existing, err := s.GetEntity(ctx, entity.ID)
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			// Подтверждение create могло потеряться, вставляем заново
			return s.CreateEntity(ctx, entity)
		}
		return nil, err
	}

	if existing.ServerVersion != expectedVersion {
		return nil, &storage.VersionConflictError{
			ID:            entity.ID,
			ServerVersion: existing.ServerVersion,
		}
	}

	query := `
		UPDATE entities
		SET simulation_id = ?, payload = ?, server_version = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		entity.SimulationID,
		[]byte(entity.Payload),
		existing.ServerVersion+1,
		time.Now().Unix(),
		entity.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}

	return s.GetEntity(ctx, entity.ID)
}

// GetEntity retrieves a single entity by ID
// Returns ErrEntityNotFound if the entity doesn't exist
func (s *Storage) GetEntity(ctx context.Context, id string) (*models.StoredEntity, error) {
	query := `
		SELECT id, entity_type, simulation_id, payload,
		       server_version, created_at, updated_at
		FROM entities
		WHERE id = ?
	`

	entity, err := scanEntity(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return entity, nil
}

// GetEntitiesByType retrieves all entities of the given type
func (s *Storage) GetEntitiesByType(ctx context.Context, entityType string) ([]*models.StoredEntity, error) {
	query := `
		SELECT id, entity_type, simulation_id, payload,
		       server_version, created_at, updated_at
		FROM entities
		WHERE entity_type = ?
		ORDER BY updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	entities := []*models.StoredEntity{}
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entities: %w", err)
	}

	return entities, nil
}

// DeleteEntity removes an entity. Удаление отсутствующей записи не
// ошибка: клиент мог повторить запрос после потерянного ответа.
func (s *Storage) DeleteEntity(ctx context.Context, id string) error {
	query := `DELETE FROM entities WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

// rowScanner абстрагирует *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (*models.StoredEntity, error) {
	var entity models.StoredEntity
	var payload []byte
	var createdAt, updatedAt int64

	err := row.Scan(
		&entity.ID,
		&entity.EntityType,
		&entity.SimulationID,
		&payload,
		&entity.ServerVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entity.Payload = payload
	entity.CreatedAt = time.Unix(createdAt, 0)
	entity.UpdatedAt = time.Unix(updatedAt, 0)

	return &entity, nil
}
