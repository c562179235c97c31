// Package api реализует HTTP клиент для сервера синхронизации.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alawein/labsync/pkg/api"
)

//go:generate go tool moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс клиента сервера синхронизации
type ClientAPI interface {
	// CreateEntity pushes a locally created entity (POST /api/sync/{type})
	CreateEntity(ctx context.Context, entity *api.Entity) (*api.PushResponse, error)

	// UpdateEntity pushes a locally updated entity (PUT /api/sync/{type})
	UpdateEntity(ctx context.Context, entity *api.Entity) (*api.PushResponse, error)

	// DeleteEntity deletes an entity on the server (DELETE /api/sync/{type}/delete?id=)
	DeleteEntity(ctx context.Context, entityType, id string) error

	// Ping checks server reachability (GET /api/health)
	Ping(ctx context.Context) error
}

// ConflictError возвращается когда серверная ревизия записи ушла вперёд
// относительно известной клиенту (HTTP 409).
type ConflictError struct {
	EntityID      string
	Message       string
	ServerVersion int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict for %s: server at version %d: %s", e.EntityID, e.ServerVersion, e.Message)
}

// AsConflict распаковывает *ConflictError из цепочки ошибок
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// CreateEntity pushes a locally created entity to the server
func (c *Client) CreateEntity(ctx context.Context, entity *api.Entity) (*api.PushResponse, error) {
	var resp api.PushResponse
	path := fmt.Sprintf("/api/sync/%s", entity.Type)
	if err := c.doRequest(ctx, http.MethodPost, path, entity, &resp); err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	return &resp, nil
}

// UpdateEntity pushes a locally updated entity to the server
func (c *Client) UpdateEntity(ctx context.Context, entity *api.Entity) (*api.PushResponse, error) {
	var resp api.PushResponse
	path := fmt.Sprintf("/api/sync/%s", entity.Type)
	if err := c.doRequest(ctx, http.MethodPut, path, entity, &resp); err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEntity deletes an entity on the server.
// Тело не передается: id уходит query-параметром.
func (c *Client) DeleteEntity(ctx context.Context, entityType, id string) error {
	path := fmt.Sprintf("/api/sync/%s/delete?id=%s", entityType, url.QueryEscape(id))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// Ping checks server reachability
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", nil, nil); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// 409 разворачиваем в типизированный ConflictError
	if resp.StatusCode == http.StatusConflict {
		var conflictResp api.ConflictResponse
		if err := json.Unmarshal(respBody, &conflictResp); err != nil {
			return &ConflictError{Message: string(respBody)}
		}
		return &ConflictError{
			EntityID:      conflictResp.ID,
			ServerVersion: conflictResp.ServerVersion,
			Message:       conflictResp.Message,
		}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
