package models

import (
	"encoding/json"
	"time"
)

// EntityType определяет какой локальной коллекции и какому серверному
// endpoint принадлежит запись.
type EntityType string

// Известные типы сущностей
const (
	EntityTypeSimulation       EntityType = "simulation"
	EntityTypeSimulationResult EntityType = "simulation_result"
	EntityTypeUserSettings     EntityType = "user_settings"
	EntityTypeSavedState       EntityType = "saved_state"
	EntityTypeExportData       EntityType = "export_data"
)

// Collection names in the local store
const (
	CollectionSimulations = "simulations"
	CollectionResults     = "results"
	CollectionSettings    = "settings"
	CollectionSyncQueue   = "syncQueue"
)

// Collection returns the local collection name for the entity type.
// Типы без собственной коллекции (настройки, сохранённые состояния,
// экспорты) живут в общей коллекции settings.
func (t EntityType) Collection() string {
	switch t {
	case EntityTypeSimulation:
		return CollectionSimulations
	case EntityTypeSimulationResult:
		return CollectionResults
	default:
		return CollectionSettings
	}
}

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeSimulation, EntityTypeSimulationResult,
		EntityTypeUserSettings, EntityTypeSavedState, EntityTypeExportData:
		return true
	}
	return false
}

// SyncStatus представляет статус синхронизации записи
type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"  // подтверждена сервером
	SyncStatusPending SyncStatus = "pending" // локальное изменение ждёт отправки
	SyncStatusSyncing SyncStatus = "syncing" // отправка выполняется прямо сейчас
	SyncStatusError   SyncStatus = "error"   // попытки исчерпаны, требуется вмешательство
)

// SyncableEntity представляет доменную запись локального хранилища.
// LocalVersion монотонно растёт при каждой локальной мутации;
// ServerVersion выставляется только после подтверждения сервером.
type SyncableEntity struct {
	CreatedAt     time.Time       `json:"created_at"`               // CreatedAt время создания записи
	UpdatedAt     time.Time       `json:"updated_at"`               // UpdatedAt время последней локальной мутации
	ID            string          `json:"id"`                       // ID уникальный идентификатор (UUID)
	Type          EntityType      `json:"type"`                     // Type тип сущности
	SimulationID  string          `json:"simulation_id,omitempty"`  // SimulationID внешний ключ на владеющую симуляцию (для результатов)
	SyncError     string          `json:"sync_error,omitempty"`     // SyncError сообщение последней ошибки синхронизации
	Payload       json.RawMessage `json:"payload"`                  // Payload непрозрачные доменные данные
	LocalVersion  int64           `json:"local_version"`            // LocalVersion счётчик локальных ревизий
	ServerVersion int64           `json:"server_version,omitempty"` // ServerVersion ревизия, подтверждённая сервером
	SyncStatus    SyncStatus      `json:"sync_status"`              // SyncStatus текущий статус синхронизации
}

// Touch bumps the local revision counter and the update timestamp.
// Вызывается при каждой локальной мутации записи.
func (e *SyncableEntity) Touch(now time.Time) {
	e.LocalVersion++
	e.UpdatedAt = now
}

// MarkSynced stamps the entity with a server-confirmed revision and
// clears any previous sync error.
func (e *SyncableEntity) MarkSynced(serverVersion int64) {
	e.ServerVersion = serverVersion
	e.SyncStatus = SyncStatusSynced
	e.SyncError = ""
}

// MarkError flags the entity as terminally failed with the given message.
func (e *SyncableEntity) MarkError(msg string) {
	e.SyncStatus = SyncStatusError
	e.SyncError = msg
}

// Clone создает глубокую копию записи
func (e *SyncableEntity) Clone() *SyncableEntity {
	payload := make(json.RawMessage, len(e.Payload))
	copy(payload, e.Payload)

	clone := *e
	clone.Payload = payload
	return &clone
}
