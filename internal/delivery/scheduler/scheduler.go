// Package scheduler drives the periodic matching sweep.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"pokeradar/config"
	"pokeradar/internal/delivery"
	"pokeradar/internal/usecase"

	"go.uber.org/fx"
)

type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Sweep  usecase.SweepUsecase
}

type sweepScheduler struct {
	interval time.Duration
	logger   *slog.Logger
	sweep    usecase.SweepUsecase
	running  atomic.Bool
	stop     chan struct{}
}

// NewScheduler creates the delivery that runs the sweep on a fixed interval.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	scheduler := &sweepScheduler{
		interval: params.Config.Sweep.Interval,
		logger:   params.Logger,
		sweep:    params.Sweep,
		stop:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: scheduler.shutdown,
	})

	return scheduler, nil
}

// Serve runs the sweep loop. The first pass fires immediately; after that
// the ticker sets the cadence. A tick that arrives while the previous pass
// is still running is skipped, never queued.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting sweep scheduler", slog.Duration("interval", s.interval))

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stop:
			s.logger.Info("Sweep scheduler stopped")

			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *sweepScheduler) runOnce(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("Previous sweep still running, skipping this tick")

		return
	}
	defer s.running.Store(false)

	stats, err := s.sweep.Run(ctx, time.Now())
	if err != nil {
		s.logger.Error("Sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Sweep finished",
		slog.Int("users", stats.Users),
		slog.Int("spawns", stats.Spawns),
		slog.Int("matched", stats.Matched),
		slog.Int("dispatched", stats.Dispatched),
		slog.Int("deduped", stats.Deduped),
		slog.Duration("elapsed", stats.Elapsed),
	)
}

func (s *sweepScheduler) shutdown(_ context.Context) error {
	close(s.stop)

	return nil
}
