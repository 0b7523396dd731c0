package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"nutritrack/config"
	deliverycontext "nutritrack/internal/delivery/context"
	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/goal"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/domain/service"
	"nutritrack/internal/errors"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	recommendationMessageFormat = "We recommend you to eat %s for your remaining nutrition values."
	dailyGoalMessage            = "Congratulations! You have reached your nutrition goals for today. Keep up the great work!"
)

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeSent
	outcomeFailed
	// outcomeCounted means the callee already recorded its outcomes.
	outcomeCounted
)

type tickCounters struct {
	dueSent       atomic.Int64
	recommended   atomic.Int64
	dailyGoalSent atomic.Int64
	skipped       atomic.Int64
	failed        atomic.Int64
}

func (c *tickCounters) record(o outcome, sent *atomic.Int64) {
	switch o {
	case outcomeSent:
		sent.Add(1)
	case outcomeFailed:
		c.failed.Add(1)
	case outcomeCounted:
	default:
		c.skipped.Add(1)
	}
}

func (c *tickCounters) report() usecase.TickReport {
	return usecase.TickReport{
		DueSent:       int(c.dueSent.Load()),
		Recommended:   int(c.recommended.Load()),
		DailyGoalSent: int(c.dailyGoalSent.Load()),
		Skipped:       int(c.skipped.Load()),
		Failed:        int(c.failed.Load()),
	}
}

// ReminderEngineParams holds dependencies for the reminder engine, injected by Fx
type ReminderEngineParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	UserRepo     repository.UserRepository
	MealRepo     repository.MealRepository
	ReminderRepo repository.ReminderRepository
	Aggregator   usecase.NutrientAggregator
	Deduplicator usecase.NotificationDeduplicator
	Recommender  usecase.RecommendationRequester
	Dispatcher   usecase.PushDispatcher
	Claimer      service.DispatchClaimer
}

// reminderEngine implements the ReminderEngine interface.
type reminderEngine struct {
	userRepo     repository.UserRepository
	mealRepo     repository.MealRepository
	reminderRepo repository.ReminderRepository
	aggregator   usecase.NutrientAggregator
	dedup        usecase.NotificationDeduplicator
	recommender  usecase.RecommendationRequester
	dispatcher   usecase.PushDispatcher
	claimer      service.DispatchClaimer
	logger       *slog.Logger

	location      *time.Location
	mealWindows   []entity.MealWindow
	dailyGoalHour int
	concurrency   int
	callTimeout   time.Duration
	dueBatchSize  int
}

// NewReminderEngine is the constructor for reminderEngine.
func NewReminderEngine(params ReminderEngineParams) usecase.ReminderEngine {
	cfg := params.Config.Scheduler

	windows := make([]entity.MealWindow, 0, len(cfg.MealWindows))
	for _, w := range cfg.MealWindows {
		windows = append(windows, entity.MealWindow{
			Category:  entity.ReminderCategory(w.Category),
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
		})
	}

	return &reminderEngine{
		userRepo:      params.UserRepo,
		mealRepo:      params.MealRepo,
		reminderRepo:  params.ReminderRepo,
		aggregator:    params.Aggregator,
		dedup:         params.Deduplicator,
		recommender:   params.Recommender,
		dispatcher:    params.Dispatcher,
		claimer:       params.Claimer,
		logger:        params.Logger,
		location:      cfg.Location(),
		mealWindows:   windows,
		dailyGoalHour: cfg.GoalHour(),
		concurrency:   cfg.Concurrency,
		callTimeout:   cfg.CallTimeout,
		dueBatchSize:  cfg.DueBatchSize,
	}
}

// RunTick runs every pass that is due at now. Per-user failures are counted and logged;
// only failures that prevent a whole pass from running are returned.
func (e *reminderEngine) RunTick(ctx context.Context, now time.Time) (usecase.TickReport, error) {
	var (
		counters tickCounters
		errs     []error
	)

	if err := e.sendDueReminders(ctx, now, &counters); err != nil {
		errs = append(errs, err)
	}

	closing := e.closingWindows(now)
	dailyGoalDue := now.In(e.location).Hour() == e.dailyGoalHour

	if len(closing) > 0 || dailyGoalDue {
		users, err := e.userRepo.FindWithPushToken(ctx)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "failed to load users with push token"))

			return counters.report(), errors.Join(errs...)
		}

		day := entity.DayWindow(now, e.location)
		for _, window := range closing {
			e.forEachUser(ctx, users, &counters, &counters.recommended, func(ctx context.Context, user *entity.User) outcome {
				return e.recommendForUser(ctx, now, day, window, user)
			})
		}

		if dailyGoalDue {
			e.forEachUser(ctx, users, &counters, &counters.dailyGoalSent, func(ctx context.Context, user *entity.User) outcome {
				return e.congratulateUser(ctx, now, day, user)
			})
		}
	}

	return counters.report(), errors.Join(errs...)
}

func (e *reminderEngine) closingWindows(now time.Time) []entity.MealWindow {
	var closing []entity.MealWindow
	for _, w := range e.mealWindows {
		if w.ClosesAt(now, e.location) {
			closing = append(closing, w)
		}
	}

	return closing
}

// forEachUser fans fn out over users with bounded concurrency. A failing or panicking user never stops the others.
func (e *reminderEngine) forEachUser(
	ctx context.Context,
	users []*entity.User,
	counters *tickCounters,
	sent *atomic.Int64,
	fn func(ctx context.Context, user *entity.User) outcome,
) {
	var g errgroup.Group
	g.SetLimit(e.concurrency)

	for _, user := range users {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					e.log(ctx).ErrorContext(ctx, "Panic while processing user",
						slog.String("user_id", user.ID.String()),
						slog.Any("panic", r),
					)
					counters.failed.Add(1)
				}
			}()

			counters.record(fn(ctx, user), sent)

			return nil
		})
	}

	_ = g.Wait()
}

// sendDueReminders delivers user-scheduled reminders whose time has come. Reminders are grouped
// by owner so each owner is loaded once and handled in scheduled order.
func (e *reminderEngine) sendDueReminders(ctx context.Context, now time.Time, counters *tickCounters) error {
	due, err := e.reminderRepo.FindDue(ctx, now, e.dueBatchSize)
	if err != nil {
		return errors.Wrap(err, "failed to load due reminders")
	}
	if len(due) == 0 {
		return nil
	}

	order := make([]uuid.UUID, 0, len(due))
	byUser := make(map[uuid.UUID][]*entity.ReminderNotification)
	for _, r := range due {
		if _, seen := byUser[r.UserID]; !seen {
			order = append(order, r.UserID)
		}
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	owners := make([]*entity.User, 0, len(order))
	for _, userID := range order {
		owners = append(owners, &entity.User{ID: userID})
	}

	e.forEachUser(ctx, owners, counters, &counters.dueSent, func(ctx context.Context, owner *entity.User) outcome {
		return e.sendDueForUser(ctx, now, owner.ID, byUser[owner.ID], counters)
	})

	return nil
}

// sendDueForUser records one outcome per reminder.
func (e *reminderEngine) sendDueForUser(
	ctx context.Context,
	now time.Time,
	userID uuid.UUID,
	reminders []*entity.ReminderNotification,
	counters *tickCounters,
) outcome {
	logger := e.log(ctx).With(slog.String("user_id", userID.String()))

	user, err := e.userRepo.FindByID(ctx, userID)
	if err != nil {
		o := outcomeFailed
		if errors.Is(err, repository.ErrUserNotFound) {
			o = outcomeSkipped
			logger.WarnContext(ctx, "Due reminders belong to unknown user", slog.Int("count", len(reminders)))
		} else {
			logger.ErrorContext(ctx, "Failed to load reminder owner", slog.Any("error", err))
		}
		for range reminders {
			counters.record(o, &counters.dueSent)
		}

		return outcomeCounted
	}

	for _, r := range reminders {
		if !user.HasPushToken() {
			// Left unsent; delivered once the user registers a token.
			counters.record(outcomeSkipped, &counters.dueSent)
			continue
		}

		counters.record(e.sendDueReminder(ctx, now, user, r, logger), &counters.dueSent)
	}

	return outcomeCounted
}

func (e *reminderEngine) sendDueReminder(
	ctx context.Context,
	now time.Time,
	user *entity.User,
	r *entity.ReminderNotification,
	logger *slog.Logger,
) outcome {
	key := "reminder:" + r.ID.String()

	claimed, err := e.claimer.Claim(ctx, key)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to claim reminder", slog.String("reminder_id", r.ID.String()), slog.Any("error", err))

		return outcomeFailed
	}
	if !claimed {
		return outcomeSkipped
	}

	msg := usecase.DispatchMessage{Category: r.Category, Body: r.Message, ReminderID: r.ID}
	if err := e.dispatch(ctx, user, msg); err != nil {
		e.release(ctx, key, logger)
		if errors.Is(err, service.ErrInvalidPushToken) {
			// The dispatcher cleared the stored token; stop sending to it within this tick.
			user.PushToken = ""
		}
		if errors.Is(err, usecase.ErrNoPushToken) {
			return outcomeSkipped
		}
		logger.ErrorContext(ctx, "Failed to dispatch reminder", slog.String("reminder_id", r.ID.String()), slog.Any("error", err))

		return outcomeFailed
	}

	if err := e.reminderRepo.MarkSent(ctx, r.ID, now); err != nil {
		if errors.Is(err, repository.ErrReminderAlreadySent) {
			logger.InfoContext(ctx, "Reminder was already marked sent", slog.String("reminder_id", r.ID.String()))

			return outcomeSent
		}
		// The claim is kept so the reminder is not pushed again while it lives.
		logger.ErrorContext(ctx, "Failed to mark reminder sent", slog.String("reminder_id", r.ID.String()), slog.Any("error", err))

		return outcomeFailed
	}

	logger.InfoContext(ctx, "Reminder sent", slog.String("reminder_id", r.ID.String()), slog.String("category", string(r.Category)))

	return outcomeSent
}

// recommendForUser runs the meal-window pass for one user.
func (e *reminderEngine) recommendForUser(
	ctx context.Context,
	now time.Time,
	day entity.TimeWindow,
	window entity.MealWindow,
	user *entity.User,
) outcome {
	logger := e.log(ctx).With(
		slog.String("user_id", user.ID.String()),
		slog.String("category", string(window.Category)),
	)

	sent, err := e.dedup.AlreadySent(ctx, user.ID, window.Category, day)
	if err != nil {
		logger.ErrorContext(ctx, "Dedup check failed", slog.Any("error", err))

		return outcomeFailed
	}
	if sent {
		return outcomeSkipped
	}

	span := window.On(now, e.location)
	ate, err := e.mealRepo.ExistsInRange(ctx, user.ID, span.Start, span.End)
	if err != nil {
		logger.ErrorContext(ctx, "Meal window check failed", slog.Any("error", err))

		return outcomeFailed
	}
	if ate {
		return outcomeSkipped
	}

	totals, err := e.aggregator.Aggregate(ctx, user.ID, day)
	if err != nil {
		logger.ErrorContext(ctx, "Aggregation failed", slog.Any("error", err))

		return outcomeFailed
	}

	eval := goal.Evaluate(totals, user.Goals)
	if eval.Remaining.IsZero() {
		return outcomeSkipped
	}

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	text, ok := e.recommender.Recommend(callCtx, eval.Remaining, entity.MealLabelAt(now, e.location))
	cancel()
	if !ok {
		return outcomeSkipped
	}

	return e.deliver(ctx, now, user, usecase.DispatchMessage{
		Category:  window.Category,
		Body:      fmt.Sprintf(recommendationMessageFormat, text),
		WindowKey: day.Key(),
	}, logger)
}

// congratulateUser runs the end-of-day pass for one user.
func (e *reminderEngine) congratulateUser(ctx context.Context, now time.Time, day entity.TimeWindow, user *entity.User) outcome {
	logger := e.log(ctx).With(
		slog.String("user_id", user.ID.String()),
		slog.String("category", string(entity.CategoryDailyGoal)),
	)

	sent, err := e.dedup.AlreadySent(ctx, user.ID, entity.CategoryDailyGoal, day)
	if err != nil {
		logger.ErrorContext(ctx, "Dedup check failed", slog.Any("error", err))

		return outcomeFailed
	}
	if sent {
		return outcomeSkipped
	}

	totals, err := e.aggregator.Aggregate(ctx, user.ID, day)
	if err != nil {
		logger.ErrorContext(ctx, "Aggregation failed", slog.Any("error", err))

		return outcomeFailed
	}

	if !goal.Evaluate(totals, user.Goals).AllReached() {
		return outcomeSkipped
	}

	return e.deliver(ctx, now, user, usecase.DispatchMessage{
		Category:  entity.CategoryDailyGoal,
		Body:      dailyGoalMessage,
		WindowKey: day.Key(),
	}, logger)
}

// deliver claims, dispatches and records a scheduler notification, in that order.
func (e *reminderEngine) deliver(
	ctx context.Context,
	now time.Time,
	user *entity.User,
	msg usecase.DispatchMessage,
	logger *slog.Logger,
) outcome {
	key := fmt.Sprintf("%s:%s:%s", user.ID, msg.Category, msg.WindowKey)

	claimed, err := e.claimer.Claim(ctx, key)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to claim dispatch", slog.Any("error", err))

		return outcomeFailed
	}
	if !claimed {
		return outcomeSkipped
	}

	if err := e.dispatch(ctx, user, msg); err != nil {
		e.release(ctx, key, logger)
		if errors.Is(err, usecase.ErrNoPushToken) {
			return outcomeSkipped
		}
		logger.ErrorContext(ctx, "Failed to dispatch notification", slog.Any("error", err))

		return outcomeFailed
	}

	sentAt := now
	reminder := &entity.ReminderNotification{
		UserID:      user.ID,
		Category:    msg.Category,
		Message:     msg.Body,
		ScheduledAt: now,
		Sent:        true,
		SentAt:      &sentAt,
		WindowKey:   msg.WindowKey,
	}
	if err := e.reminderRepo.Create(ctx, reminder); err != nil {
		if errors.Is(err, repository.ErrDuplicateReminder) {
			logger.WarnContext(ctx, "Notification already recorded for window")
		} else {
			logger.ErrorContext(ctx, "Failed to record sent notification", slog.Any("error", err))
		}

		return outcomeSent
	}

	logger.InfoContext(ctx, "Notification sent", slog.String("window_key", msg.WindowKey))

	return outcomeSent
}

func (e *reminderEngine) dispatch(ctx context.Context, user *entity.User, msg usecase.DispatchMessage) error {
	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	return e.dispatcher.Dispatch(callCtx, user, msg)
}

func (e *reminderEngine) release(ctx context.Context, key string, logger *slog.Logger) {
	if err := e.claimer.Release(ctx, key); err != nil {
		logger.WarnContext(ctx, "Failed to release dispatch claim", slog.String("key", key), slog.Any("error", err))
	}
}

func (e *reminderEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, e.logger)
}
