package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /api/health
// Клиент использует этот endpoint как пробу доступности
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
