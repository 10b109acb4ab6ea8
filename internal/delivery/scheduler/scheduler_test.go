package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"pokeradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweep struct {
	runs  atomic.Int64
	delay time.Duration
}

func (c *countingSweep) Run(_ context.Context, _ time.Time) (*usecase.SweepStats, error) {
	c.runs.Add(1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}

	return &usecase.SweepStats{}, nil
}

func newTestScheduler(interval time.Duration, sweep usecase.SweepUsecase) *sweepScheduler {
	return &sweepScheduler{
		interval: interval,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		sweep:    sweep,
		stop:     make(chan struct{}),
	}
}

func TestScheduler_RunsImmediatelyAndOnInterval(t *testing.T) {
	sweep := &countingSweep{}
	scheduler := newTestScheduler(20*time.Millisecond, sweep)

	done := make(chan error, 1)
	go func() { done <- scheduler.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		return sweep.runs.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, scheduler.shutdown(context.Background()))
	require.NoError(t, <-done)
}

func TestScheduler_StopEndsServe(t *testing.T) {
	sweep := &countingSweep{}
	scheduler := newTestScheduler(time.Hour, sweep)

	done := make(chan error, 1)
	go func() { done <- scheduler.Serve(context.Background()) }()

	// Only the immediate first pass should have run.
	require.Eventually(t, func() bool {
		return sweep.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, scheduler.shutdown(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_SkipsTickWhileSweepRunning(t *testing.T) {
	sweep := &countingSweep{delay: 100 * time.Millisecond}
	scheduler := newTestScheduler(10*time.Millisecond, sweep)

	done := make(chan error, 1)
	go func() { done <- scheduler.Serve(context.Background()) }()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, scheduler.shutdown(context.Background()))
	<-done

	// With a 100ms sweep and 10ms ticks, queuing would give ~15 runs.
	// Overlap skipping keeps it near two.
	assert.LessOrEqual(t, sweep.runs.Load(), int64(3))
}

func TestScheduler_ContextCancelEndsServe(t *testing.T) {
	sweep := &countingSweep{}
	scheduler := newTestScheduler(time.Hour, sweep)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Serve(ctx) }()

	require.Eventually(t, func() bool {
		return sweep.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
