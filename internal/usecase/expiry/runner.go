package expiry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lounge-scheduler/internal/pkg/clock"
)

const defaultInterval = time.Minute

// Runner evaluates every subscription on a fixed cadence.
type Runner struct {
	engine   Engine
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(engine Engine, clock clock.Clock, interval time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		logger.Warn("expiry interval not set, using default", "default_interval", defaultInterval)
		interval = defaultInterval
	}
	return &Runner{
		engine:   engine,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the loop in the background. Calling Start twice is a no-op.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.run(ctx, r.done)
}

// Stop cancels the loop and waits for the current pass to finish or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	r.logger.Info("expiry runner started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("expiry runner stopped")
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick performs one evaluation pass.
func (r *Runner) Tick(ctx context.Context) {
	emitted, err := r.engine.EvaluateAll(ctx, r.clock.Now())
	if err != nil && ctx.Err() == nil {
		r.logger.Error("expiry evaluation pass failed", "error", err)
	}
	if len(emitted) > 0 {
		r.logger.Info("expiry notices emitted", "count", len(emitted))
	}
}
