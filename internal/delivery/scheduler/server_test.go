package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"nutritrack/config"
	deliverycontext "nutritrack/internal/delivery/context"
	mockUsecase "nutritrack/internal/mocks/usecase"
	"nutritrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedulerServer_RunsTicksUntilStopped(t *testing.T) {
	engine := mockUsecase.NewMockReminderEngine(t)
	fixed := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)

	var calls atomic.Int32
	engine.EXPECT().RunTick(mock.Anything, fixed).
		RunAndReturn(func(ctx context.Context, _ time.Time) (usecase.TickReport, error) {
			assert.NotEmpty(t, deliverycontext.CorrelationID(ctx))
			assert.NotNil(t, deliverycontext.Logger(ctx, nil))
			calls.Add(1)

			return usecase.TickReport{}, nil
		})

	srv := newServer(engine, discardLogger(), 5*time.Millisecond, true, func() time.Time { return fixed })

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	require.NoError(t, srv.stop(context.Background()))
	require.NoError(t, <-errCh)

	stoppedAt := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stoppedAt, calls.Load(), "no tick may run after stop")
}

func TestSchedulerServer_SurvivesPanicsAndErrors(t *testing.T) {
	engine := mockUsecase.NewMockReminderEngine(t)

	var calls atomic.Int32
	engine.EXPECT().RunTick(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (usecase.TickReport, error) {
			switch calls.Add(1) {
			case 1:
				panic("tick exploded")
			case 2:
				return usecase.TickReport{Failed: 1}, errors.New("database unavailable")
			default:
				return usecase.TickReport{}, nil
			}
		})

	srv := newServer(engine, discardLogger(), 5*time.Millisecond, true, time.Now)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-errCh)
}

func TestSchedulerServer_Disabled(t *testing.T) {
	engine := mockUsecase.NewMockReminderEngine(t)
	srv := newServer(engine, discardLogger(), time.Millisecond, false, time.Now)

	require.NoError(t, srv.Serve(context.Background()))
	require.NoError(t, srv.stop(context.Background()))
	engine.AssertNotCalled(t, "RunTick", mock.Anything, mock.Anything)
}

func TestSchedulerServer_StopBeforeServe(t *testing.T) {
	srv := newServer(mockUsecase.NewMockReminderEngine(t), discardLogger(), time.Second, true, time.Now)

	assert.NoError(t, srv.stop(context.Background()))
}

func TestNewServer_Validation(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    &config.Config{},
		Logger: discardLogger(),
		Engine: mockUsecase.NewMockReminderEngine(t),
	})
	require.Error(t, err)

	_, err = NewServer(ServerParams{
		Lc:     lc,
		Cfg:    &config.Config{Scheduler: &config.SchedulerConfig{Interval: 0}},
		Logger: discardLogger(),
		Engine: mockUsecase.NewMockReminderEngine(t),
	})
	require.Error(t, err)

	srv, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    &config.Config{Scheduler: &config.SchedulerConfig{Interval: time.Minute}},
		Logger: discardLogger(),
		Engine: mockUsecase.NewMockReminderEngine(t),
	})
	require.NoError(t, err)
	assert.NotNil(t, srv)
}
