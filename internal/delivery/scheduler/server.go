// Package scheduler drives the reminder engine on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"nutritrack/config"
	"nutritrack/internal/delivery"
	deliverycontext "nutritrack/internal/delivery/context"
	"nutritrack/internal/domain/lifecycle"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the scheduler loop
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Engine usecase.ReminderEngine
}

type schedulerServer struct {
	engine   usecase.ReminderEngine
	logger   *slog.Logger
	interval time.Duration
	enabled  bool
	now      func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewServer creates the scheduler loop. Ticks run one after another, so they never overlap in this process.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Scheduler
	if cfg == nil {
		return nil, errors.New("scheduler configuration is required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.Errorf("scheduler interval must be positive, got %s", cfg.Interval)
	}

	srv := newServer(params.Engine, params.Logger, cfg.Interval, cfg.Enabled, time.Now)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newServer(engine usecase.ReminderEngine, logger *slog.Logger, interval time.Duration, enabled bool, now func() time.Time) *schedulerServer {
	return &schedulerServer{
		engine:   engine,
		logger:   logger,
		interval: interval,
		enabled:  enabled,
		now:      now,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Serve runs a tick immediately and then on every interval until ctx is cancelled or the server is stopped.
func (s *schedulerServer) Serve(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("Reminder scheduler disabled")

		return nil
	}

	s.logger.Info("Starting reminder scheduler", slog.Duration("interval", s.interval))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Stopping cancels the in-flight tick so outstanding calls return early.
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.runTick(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// runTick executes one engine pass. Panics and errors are logged and never stop the loop.
func (s *schedulerServer) runTick(ctx context.Context) {
	tickID := uuid.NewString()
	logger := s.logger.With(slog.String("tick", tickID))

	ctx = deliverycontext.WithScope(ctx, tickID, logger)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Reminder tick panicked", slog.Any("panic", r))
		}
	}()

	start := s.now()
	report, err := s.engine.RunTick(ctx, start)
	if err != nil {
		logger.ErrorContext(ctx, "Reminder tick failed", slog.Any("error", err))
	}

	level := slog.LevelDebug
	if report.DueSent+report.Recommended+report.DailyGoalSent+report.Failed > 0 {
		level = slog.LevelInfo
	}
	logger.Log(ctx, level, "Reminder tick finished",
		slog.Int("due_sent", report.DueSent),
		slog.Int("recommended", report.Recommended),
		slog.Int("daily_goal_sent", report.DailyGoalSent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Duration("elapsed", s.now().Sub(start)),
	)
}

// stop signals the loop and waits for the in-flight tick to finish.
func (s *schedulerServer) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	if !s.started.Load() {
		return nil
	}

	s.logger.Info("Shutting down reminder scheduler")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "reminder scheduler did not stop in time")
	}
}
