package models

import (
	"encoding/json"
	"time"
)

// SyncAction определяет вид отложенной мутации
type SyncAction string

const (
	ActionCreate SyncAction = "create"
	ActionUpdate SyncAction = "update"
	ActionDelete SyncAction = "delete"
)

// Priority returns the drain priority of the action.
// Меньшее значение обрабатывается раньше: удаления идут перед
// созданиями, создания перед обновлениями.
func (a SyncAction) Priority() int {
	switch a {
	case ActionDelete:
		return 1
	case ActionCreate:
		return 2
	default:
		return 3
	}
}

// Valid reports whether a is one of the known actions.
func (a SyncAction) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// MaxSyncAttempts ограничивает число попыток отправки одного элемента
// очереди. После исчерпания попыток элемент удаляется, а сущность помечается
// статусом error.
const MaxSyncAttempts = 3

// SyncQueueItem оборачивает одну отложенную мутацию сущности.
// Элемент живёт строго короче самой сущности: от локальной мутации до
// первой успешной отправки или исчерпания попыток.
type SyncQueueItem struct {
	EnqueuedAt  time.Time       `json:"enqueued_at"`            // EnqueuedAt время постановки в очередь
	LastAttempt time.Time       `json:"last_attempt"`           // LastAttempt время последней попытки отправки
	ID          string          `json:"id"`                     // ID уникальный идентификатор элемента очереди (UUID)
	EntityType  EntityType      `json:"entity_type"`            // EntityType тип сущности
	EntityID    string          `json:"entity_id"`              // EntityID идентификатор сущности
	Action      SyncAction      `json:"action"`                 // Action вид мутации: create, update, delete
	Payload     json.RawMessage `json:"payload,omitempty"`      // Payload снимок сущности на момент мутации (nil для delete)
	Priority    int             `json:"priority"`               // Priority приоритет обработки (delete=1, create=2, update=3)
	Attempts    int             `json:"attempts"`               // Attempts счётчик выполненных попыток
}

// Exhausted reports whether the item has used up its retry budget.
func (i *SyncQueueItem) Exhausted() bool {
	return i.Attempts >= MaxSyncAttempts
}
