// Package api содержит wire-контракты между клиентом labsync и
// сервером синхронизации.
package api

import (
	"encoding/json"
	"time"
)

// Entity представляет сериализованную запись для передачи по сети.
// Тело POST/PUT запросов на /api/sync/{type}; для DELETE тело не
// передаётся, id уходит query-параметром.
type Entity struct {
	CreatedAt     time.Time       `json:"created_at"`               // время создания записи
	UpdatedAt     time.Time       `json:"updated_at"`               // время последней локальной мутации
	ID            string          `json:"id"`                       // UUID записи
	Type          string          `json:"type"`                     // тип сущности (сегмент пути {type})
	SimulationID  string          `json:"simulation_id,omitempty"`  // внешний ключ на симуляцию
	Payload       json.RawMessage `json:"payload"`                  // непрозрачные доменные данные
	LocalVersion  int64           `json:"local_version"`            // локальная ревизия клиента
	ServerVersion int64           `json:"server_version,omitempty"` // последняя известная клиенту серверная ревизия
}

// PushResponse представляет ответ сервера на принятую мутацию
type PushResponse struct {
	ID            string `json:"id"`             // UUID записи
	ServerVersion int64  `json:"server_version"` // новая серверная ревизия
}

// ConflictResponse представляет ответ 409 Conflict: серверная ревизия
// ушла вперёд относительно известной клиенту.
type ConflictResponse struct {
	ID            string `json:"id"`             // UUID конфликтующей записи
	ServerVersion int64  `json:"server_version"` // актуальная серверная ревизия
	Message       string `json:"message"`        // описание конфликта
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
