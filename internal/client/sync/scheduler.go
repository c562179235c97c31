package sync

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler периодически запускает разбор очереди и дополнительно
// срабатывает при переходе офлайн -> онлайн.
type Scheduler struct {
	coordinator *Coordinator
	transitions <-chan bool
	logger      *slog.Logger
	interval    time.Duration
}

// NewScheduler creates a scheduler draining the queue every interval.
// transitions может быть nil, тогда срабатывает только таймер.
func NewScheduler(coordinator *Coordinator, interval time.Duration, transitions <-chan bool, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		coordinator: coordinator,
		interval:    interval,
		transitions: transitions,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled, draining the queue on every tick
// and on every offline to online transition.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Sync scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.drain(ctx)
		case online, ok := <-s.transitions:
			if !ok {
				// Источник переходов закрылся, остаёмся на таймере
				s.transitions = nil
				continue
			}
			if online {
				s.logger.Info("Connectivity restored, draining queue")
				s.drain(ctx)
			}
		}
	}
}

func (s *Scheduler) drain(ctx context.Context) {
	if _, err := s.coordinator.Drain(ctx); err != nil {
		s.logger.Error("Scheduled drain failed", "error", err)
	}
}
