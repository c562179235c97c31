package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/alawein/labsync/internal/client/api"
	"github.com/alawein/labsync/internal/models"
	"github.com/alawein/labsync/pkg/api"
)

func TestScheduler_DrainsOnTick(t *testing.T) {
	ts := newTestStores()
	ts.addEntity("sim-1", models.EntityTypeSimulation, models.SyncStatusPending)
	ts.addQueueItem("q-1", "sim-1", models.ActionCreate, time.Now())

	pushed := make(chan struct{}, 1)
	apiMock := &httpClient.ClientAPIMock{
		CreateEntityFunc: func(ctx context.Context, entity *api.Entity) (*api.PushResponse, error) {
			select {
			case pushed <- struct{}{}:
			default:
			}
			return &api.PushResponse{ID: entity.ID, ServerVersion: 1}, nil
		},
	}

	coordinator := newTestCoordinator(ts, apiMock, nil)
	scheduler := NewScheduler(coordinator, 10*time.Millisecond, nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	select {
	case <-pushed:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never drained the queue")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_DrainsOnOnlineTransition(t *testing.T) {
	ts := newTestStores()
	ts.addEntity("sim-1", models.EntityTypeSimulation, models.SyncStatusPending)
	ts.addQueueItem("q-1", "sim-1", models.ActionCreate, time.Now())

	pushed := make(chan struct{}, 1)
	apiMock := &httpClient.ClientAPIMock{
		CreateEntityFunc: func(ctx context.Context, entity *api.Entity) (*api.PushResponse, error) {
			select {
			case pushed <- struct{}{}:
			default:
			}
			return &api.PushResponse{ID: entity.ID, ServerVersion: 1}, nil
		},
	}

	coordinator := newTestCoordinator(ts, apiMock, nil)

	transitions := make(chan bool, 1)
	// Интервал намеренно большой: сработать должен только переход
	scheduler := NewScheduler(coordinator, time.Hour, transitions, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	transitions <- true

	select {
	case <-pushed:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not drain on online transition")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_IgnoresOfflineTransition(t *testing.T) {
	ts := newTestStores()
	ts.addEntity("sim-1", models.EntityTypeSimulation, models.SyncStatusPending)
	ts.addQueueItem("q-1", "sim-1", models.ActionCreate, time.Now())

	apiMock := &httpClient.ClientAPIMock{}

	coordinator := newTestCoordinator(ts, apiMock, nil)

	transitions := make(chan bool)
	scheduler := NewScheduler(coordinator, time.Hour, transitions, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	// Переход в офлайн не должен запускать разбор
	transitions <- false
	// Закрытие источника тоже не должно ломать цикл
	close(transitions)

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, apiMock.CreateEntityCalls(), 0)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
