package connectivity

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// probeState переключаемая проба для тестов
type probeState struct {
	mu  sync.Mutex
	err error
}

func (p *probeState) set(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *probeState) probe(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func TestMonitor_StartsOffline(t *testing.T) {
	monitor := NewMonitor(func(ctx context.Context) error { return nil }, time.Second, testLogger())
	assert.False(t, monitor.Online())
}

func TestMonitor_TransitionNotifications(t *testing.T) {
	state := &probeState{err: errors.New("connection refused")}

	monitor := NewMonitor(state.probe, 10*time.Millisecond, testLogger())

	transitions := make(chan bool, 16)
	unsubscribe := monitor.Subscribe(func(online bool) {
		transitions <- online
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- monitor.Run(ctx) }()

	// Проба падает: состояние остаётся офлайн, уведомлений нет
	select {
	case online := <-transitions:
		t.Fatalf("unexpected transition to %v while probe keeps failing", online)
	case <-time.After(50 * time.Millisecond):
	}

	// Проба выздоравливает: ровно один переход в онлайн
	state.set(nil)
	select {
	case online := <-transitions:
		assert.True(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("no transition to online")
	}
	assert.True(t, monitor.Online())

	// Проба снова падает: переход в офлайн
	state.set(errors.New("timeout"))
	select {
	case online := <-transitions:
		assert.False(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("no transition to offline")
	}
	assert.False(t, monitor.Online())

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestMonitor_Unsubscribe(t *testing.T) {
	state := &probeState{err: errors.New("down")}
	monitor := NewMonitor(state.probe, 10*time.Millisecond, testLogger())

	var calls int
	var mu sync.Mutex
	unsubscribe := monitor.Subscribe(func(online bool) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = monitor.Run(ctx) }()

	state.set(nil)
	require.Eventually(t, monitor.Online, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
}
