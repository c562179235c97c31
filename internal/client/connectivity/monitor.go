// Package connectivity отслеживает доступность сервера синхронизации
// периодическими пробами и уведомляет подписчиков о переходах
// онлайн/офлайн.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ProbeFunc проверяет доступность сервера. nil ошибка означает онлайн.
type ProbeFunc func(ctx context.Context) error

// Monitor probes the server on an interval and tracks online state.
// Начальное состояние - офлайн до первой успешной пробы.
type Monitor struct {
	probe       ProbeFunc
	logger      *slog.Logger
	subscribers map[int]func(online bool)
	interval    time.Duration
	nextID      int
	mu          sync.Mutex
	online      atomic.Bool
}

// NewMonitor creates a connectivity monitor
func NewMonitor(probe ProbeFunc, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		probe:       probe,
		interval:    interval,
		logger:      logger,
		subscribers: make(map[int]func(online bool)),
	}
}

// Online reports the last observed connectivity state
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Subscribe registers a handler called on every state transition and
// returns an unsubscribe function.
func (m *Monitor) Subscribe(handler func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subscribers[id] = handler

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// Run blocks until ctx is cancelled, probing the server on every tick.
// Первая проба выполняется сразу, не дожидаясь тика.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check выполняет одну пробу и рассылает уведомление при смене состояния
func (m *Monitor) check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.probe(probeCtx)
	online := err == nil

	// Swap возвращает прежнее значение, уведомляем только на переходах
	if previous := m.online.Swap(online); previous == online {
		return
	}

	if online {
		m.logger.Info("Server is reachable, going online")
	} else {
		m.logger.Info("Server is unreachable, going offline", "error", err)
	}

	m.notify(online)
}

func (m *Monitor) notify(online bool) {
	m.mu.Lock()
	handlers := make([]func(bool), 0, len(m.subscribers))
	for _, handler := range m.subscribers {
		handlers = append(handlers, handler)
	}
	m.mu.Unlock()

	for _, handler := range handlers {
		handler(online)
	}
}
