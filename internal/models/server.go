package models

import (
	"encoding/json"
	"time"
)

// StoredEntity представляет запись на стороне сервера. Сервер хранит
// только подтвержденное состояние, клиентские поля (статус, локальная
// версия) сюда не попадают.
type StoredEntity struct {
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ID            string          `json:"id"`
	EntityType    string          `json:"entity_type"`
	SimulationID  string          `json:"simulation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	ServerVersion int64           `json:"server_version"`
}
