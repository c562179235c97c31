package models

import "time"

// ConflictStrategy определяет стратегию разрешения конфликта версий
type ConflictStrategy string

const (
	ConflictKeepLocal  ConflictStrategy = "keep_local"
	ConflictKeepServer ConflictStrategy = "keep_server"
	ConflictMerge      ConflictStrategy = "merge"
)

// ConflictResolution фиксирует обнаруженный конфликт версий между
// локальной и серверной копией записи. Автоматическое слияние не
// выполняется: запись остаётся в статусе error до ручного решения.
type ConflictResolution struct {
	DetectedAt    time.Time        `json:"detected_at"`        // DetectedAt время обнаружения конфликта
	EntityType    EntityType       `json:"entity_type"`        // EntityType тип конфликтующей сущности
	EntityID      string           `json:"entity_id"`          // EntityID идентификатор сущности
	Strategy      ConflictStrategy `json:"strategy,omitempty"` // Strategy выбранная стратегия (пустая пока решение не принято)
	LocalVersion  int64            `json:"local_version"`      // LocalVersion локальная ревизия на момент конфликта
	ServerVersion int64            `json:"server_version"`     // ServerVersion серверная ревизия, вызвавшая конфликт
}
