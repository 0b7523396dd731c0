package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/domain/service"
	mockRepo "nutritrack/internal/mocks/repository"
	mockSvc "nutritrack/internal/mocks/service"
	mockUsecase "nutritrack/internal/mocks/usecase"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reminderEngineFixtures holds all test dependencies for reminder engine tests.
type reminderEngineFixtures struct {
	engine       usecase.ReminderEngine
	userRepo     *mockRepo.MockUserRepository
	mealRepo     *mockRepo.MockMealRepository
	reminderRepo *mockRepo.MockReminderRepository
	aggregator   *mockUsecase.MockNutrientAggregator
	dedup        *mockUsecase.MockNotificationDeduplicator
	recommender  *mockUsecase.MockRecommendationRequester
	dispatcher   *mockUsecase.MockPushDispatcher
	claimer      *mockSvc.MockDispatchClaimer
}

func newSchedulerTestConfig() *config.Config {
	return &config.Config{
		Scheduler: &config.SchedulerConfig{
			Enabled:       true,
			Interval:      15 * time.Second,
			Timezone:      "UTC",
			Concurrency:   4,
			CallTimeout:   time.Second,
			DueBatchSize:  100,
			DailyGoalHour: ptr(23),
			MealWindows:   config.DefaultMealWindows(),
		},
	}
}

func createTestReminderEngine(t *testing.T) reminderEngineFixtures {
	fx := reminderEngineFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		mealRepo:     mockRepo.NewMockMealRepository(t),
		reminderRepo: mockRepo.NewMockReminderRepository(t),
		aggregator:   mockUsecase.NewMockNutrientAggregator(t),
		dedup:        mockUsecase.NewMockNotificationDeduplicator(t),
		recommender:  mockUsecase.NewMockRecommendationRequester(t),
		dispatcher:   mockUsecase.NewMockPushDispatcher(t),
		claimer:      mockSvc.NewMockDispatchClaimer(t),
	}

	fx.engine = NewReminderEngine(ReminderEngineParams{
		Config:       newSchedulerTestConfig(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserRepo:     fx.userRepo,
		MealRepo:     fx.mealRepo,
		ReminderRepo: fx.reminderRepo,
		Aggregator:   fx.aggregator,
		Deduplicator: fx.dedup,
		Recommender:  fx.recommender,
		Dispatcher:   fx.dispatcher,
		Claimer:      fx.claimer,
	})

	return fx
}

func testUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "eater@example.com",
		Name:      "Eater",
		Goals:     entity.Nutrients{Calories: 2000, Protein: 100, Carbs: 250, Fat: 70},
		PushToken: "token-1",
	}
}

func at(hour int) time.Time {
	return time.Date(2024, 5, 1, hour, 0, 0, 0, time.UTC)
}

func TestReminderEngine_MealWindowRecommendation(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)
	totals := entity.Nutrients{Calories: 500, Protein: 20, Carbs: 60, Fat: 10}

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(false, nil)
	fx.mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, at(12), at(17)).Return(false, nil)
	fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(totals, nil)
	fx.recommender.EXPECT().
		Recommend(mock.Anything, entity.Nutrients{Calories: 1500, Protein: 80, Carbs: 190, Fat: 60}, entity.CategoryDinner).
		Return("Grilled salmon with rice", true).
		Once()
	fx.claimer.EXPECT().Claim(mock.Anything, user.ID.String()+":lunch:2024-05-01").Return(true, nil)
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, user, usecase.DispatchMessage{
			Category:  entity.CategoryLunch,
			Body:      "We recommend you to eat Grilled salmon with rice for your remaining nutrition values.",
			WindowKey: "2024-05-01",
		}).
		Return(nil).
		Once()
	fx.reminderRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *entity.ReminderNotification) bool {
			return r.UserID == user.ID &&
				r.Category == entity.CategoryLunch &&
				r.Sent &&
				r.SentAt != nil && r.SentAt.Equal(now) &&
				r.WindowKey == "2024-05-01"
		})).
		Return(nil).
		Once()

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Recommended: 1}, report)
}

func TestReminderEngine_RecommendationUnavailable(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(false, nil)
	fx.mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, at(12), at(17)).Return(false, nil)
	fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(entity.Nutrients{}, nil)
	fx.recommender.EXPECT().Recommend(mock.Anything, user.Goals, entity.CategoryDinner).Return("", false).Once()

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Skipped: 1}, report)
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	fx.reminderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReminderEngine_MealLoggedInWindowSkips(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(false, nil)
	fx.mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, at(12), at(17)).Return(true, nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Skipped: 1}, report)
	fx.recommender.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything, mock.Anything)
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderEngine_AlreadySentSkips(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(true, nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Skipped: 1}, report)
	fx.mealRepo.AssertNotCalled(t, "ExistsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderEngine_GoalsMetSkipsRecommendation(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(false, nil)
	fx.mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, at(12), at(17)).Return(false, nil)
	fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(user.Goals, nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Skipped: 1}, report)
	fx.recommender.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderEngine_ClaimHeldElsewhere(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(false, nil)
	fx.mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, at(12), at(17)).Return(false, nil)
	fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(entity.Nutrients{}, nil)
	fx.recommender.EXPECT().Recommend(mock.Anything, user.Goals, entity.CategoryDinner).Return("Oatmeal", true)
	fx.claimer.EXPECT().Claim(mock.Anything, mock.Anything).Return(false, nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Skipped: 1}, report)
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderEngine_DispatchFailureReleasesClaim(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)
	key := user.ID.String() + ":lunch:2024-05-01"

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryLunch, day).Return(false, nil)
	fx.mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, at(12), at(17)).Return(false, nil)
	fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(entity.Nutrients{}, nil)
	fx.recommender.EXPECT().Recommend(mock.Anything, user.Goals, entity.CategoryDinner).Return("Oatmeal", true)
	fx.claimer.EXPECT().Claim(mock.Anything, key).Return(true, nil)
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, user, mock.Anything).Return(errors.New("gateway unavailable"))
	fx.claimer.EXPECT().Release(mock.Anything, key).Return(nil).Once()

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Failed: 1}, report)
	fx.reminderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReminderEngine_DuplicateRecordStillCountsAsSent(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(23)
	user := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryDailyGoal, day).Return(false, nil)
	fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(user.Goals, nil)
	fx.claimer.EXPECT().Claim(mock.Anything, mock.Anything).Return(true, nil)
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, user, mock.Anything).Return(nil)
	fx.reminderRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.Wrap(repository.ErrDuplicateReminder, "insert"))

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{DailyGoalSent: 1}, report)
}

func TestReminderEngine_DailyGoal(t *testing.T) {
	tests := []struct {
		name       string
		totals     entity.Nutrients
		expectSend bool
		want       usecase.TickReport
	}{
		{
			name:       "all goals reached",
			totals:     entity.Nutrients{Calories: 2100, Protein: 100, Carbs: 260, Fat: 75},
			expectSend: true,
			want:       usecase.TickReport{DailyGoalSent: 1},
		},
		{
			name:   "some goals reached",
			totals: entity.Nutrients{Calories: 2100, Protein: 40, Carbs: 260, Fat: 75},
			want:   usecase.TickReport{Skipped: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReminderEngine(t)

			ctx := context.Background()
			now := at(23)
			user := testUser()
			day := entity.DayWindow(now, time.UTC)

			fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
			fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
			fx.dedup.EXPECT().AlreadySent(mock.Anything, user.ID, entity.CategoryDailyGoal, day).Return(false, nil)
			fx.aggregator.EXPECT().Aggregate(mock.Anything, user.ID, day).Return(tt.totals, nil)

			if tt.expectSend {
				fx.claimer.EXPECT().Claim(mock.Anything, user.ID.String()+":daily-goal:2024-05-01").Return(true, nil)
				fx.dispatcher.EXPECT().
					Dispatch(mock.Anything, user, usecase.DispatchMessage{
						Category:  entity.CategoryDailyGoal,
						Body:      dailyGoalMessage,
						WindowKey: "2024-05-01",
					}).
					Return(nil)
				fx.reminderRepo.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(r *entity.ReminderNotification) bool {
						return r.Category == entity.CategoryDailyGoal && r.Sent
					})).
					Return(nil)
			}

			report, err := fx.engine.RunTick(ctx, now)

			require.NoError(t, err)
			assert.Equal(t, tt.want, report)
		})
	}
}

func TestReminderEngine_NoPassDueOutsideClosingHours(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(10)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{}, report)
	fx.userRepo.AssertNotCalled(t, "FindWithPushToken", mock.Anything)
}

func TestReminderEngine_LoadUsersError(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(17)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return(nil, errors.New("connection refused"))

	_, err := fx.engine.RunTick(ctx, now)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load users with push token")
}

func TestReminderEngine_DueReminders(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(10)
	owner := testUser()
	tokenless := &entity.User{ID: uuid.New()}

	first := &entity.ReminderNotification{ID: uuid.New(), UserID: owner.ID, Category: entity.CategorySnack, Message: "Have an apple", ScheduledAt: at(9)}
	second := &entity.ReminderNotification{ID: uuid.New(), UserID: owner.ID, Category: entity.CategoryCustom, Message: "Drink water", ScheduledAt: at(10)}
	waiting := &entity.ReminderNotification{ID: uuid.New(), UserID: tokenless.ID, Category: entity.CategorySnack, Message: "Stretch", ScheduledAt: at(9)}

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).
		Return([]*entity.ReminderNotification{first, waiting, second}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil).Once()
	fx.userRepo.EXPECT().FindByID(mock.Anything, tokenless.ID).Return(tokenless, nil).Once()

	fx.claimer.EXPECT().Claim(mock.Anything, "reminder:"+first.ID.String()).Return(true, nil)
	fx.claimer.EXPECT().Claim(mock.Anything, "reminder:"+second.ID.String()).Return(true, nil)
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, owner, usecase.DispatchMessage{Category: entity.CategorySnack, Body: "Have an apple", ReminderID: first.ID}).
		Return(nil)
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, owner, usecase.DispatchMessage{Category: entity.CategoryCustom, Body: "Drink water", ReminderID: second.ID}).
		Return(nil)
	fx.reminderRepo.EXPECT().MarkSent(mock.Anything, first.ID, now).Return(nil)
	fx.reminderRepo.EXPECT().MarkSent(mock.Anything, second.ID, now).
		Return(errors.Wrap(repository.ErrReminderAlreadySent, "mark"))

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{DueSent: 2, Skipped: 1}, report)
}

func TestReminderEngine_DueRemindersInvalidToken(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(10)
	owner := testUser()

	first := &entity.ReminderNotification{ID: uuid.New(), UserID: owner.ID, Category: entity.CategorySnack, Message: "Snack", ScheduledAt: at(8)}
	second := &entity.ReminderNotification{ID: uuid.New(), UserID: owner.ID, Category: entity.CategorySnack, Message: "Snack again", ScheduledAt: at(9)}

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return([]*entity.ReminderNotification{first, second}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	fx.claimer.EXPECT().Claim(mock.Anything, "reminder:"+first.ID.String()).Return(true, nil)
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, owner, mock.Anything).
		Return(errors.Wrap(service.ErrInvalidPushToken, "send")).
		Once()
	fx.claimer.EXPECT().Release(mock.Anything, "reminder:"+first.ID.String()).Return(nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Failed: 1, Skipped: 1}, report)
	fx.reminderRepo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderEngine_DueRemindersLoadError(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(10)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, errors.New("timeout"))

	_, err := fx.engine.RunTick(ctx, now)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load due reminders")
}

func TestReminderEngine_PanicInOneUserDoesNotStopOthers(t *testing.T) {
	fx := createTestReminderEngine(t)

	ctx := context.Background()
	now := at(23)
	broken := testUser()
	healthy := testUser()
	day := entity.DayWindow(now, time.UTC)

	fx.reminderRepo.EXPECT().FindDue(ctx, now, 100).Return(nil, nil)
	fx.userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{broken, healthy}, nil)
	fx.dedup.EXPECT().AlreadySent(mock.Anything, broken.ID, entity.CategoryDailyGoal, day).
		RunAndReturn(func(context.Context, uuid.UUID, entity.ReminderCategory, entity.TimeWindow) (bool, error) {
			panic("boom")
		})
	fx.dedup.EXPECT().AlreadySent(mock.Anything, healthy.ID, entity.CategoryDailyGoal, day).Return(true, nil)

	report, err := fx.engine.RunTick(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, usecase.TickReport{Skipped: 1, Failed: 1}, report)
}

// memoryReminderStore keeps sent scheduler rows and enforces the one-per-window unique index.
type memoryReminderStore struct {
	repository.ReminderRepository

	mu   sync.Mutex
	rows []*entity.ReminderNotification
}

func (s *memoryReminderStore) FindDue(context.Context, time.Time, int) ([]*entity.ReminderNotification, error) {
	return nil, nil
}

func (s *memoryReminderStore) Create(_ context.Context, r *entity.ReminderNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.rows {
		if existing.UserID == r.UserID && existing.Category == r.Category && existing.WindowKey == r.WindowKey {
			return repository.ErrDuplicateReminder
		}
	}
	s.rows = append(s.rows, r)

	return nil
}

func (s *memoryReminderStore) ExistsSent(
	_ context.Context,
	userID uuid.UUID,
	category entity.ReminderCategory,
	start, end time.Time,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := entity.TimeWindow{Start: start, End: end}
	for _, r := range s.rows {
		if r.UserID == userID && r.Category == category && r.Sent && r.SentAt != nil && window.Contains(*r.SentAt) {
			return true, nil
		}
	}

	return false, nil
}

// memoryClaimer grants each key once.
type memoryClaimer struct {
	mu   sync.Mutex
	held map[string]bool
}

func (c *memoryClaimer) Claim(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.held[key] {
		return false, nil
	}
	c.held[key] = true

	return true, nil
}

func (c *memoryClaimer) Release(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.held, key)

	return nil
}

func TestReminderEngine_RepeatedTicksDispatchOnce(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	aggregator := mockUsecase.NewMockNutrientAggregator(t)
	recommender := mockUsecase.NewMockRecommendationRequester(t)
	dispatcher := mockUsecase.NewMockPushDispatcher(t)
	store := &memoryReminderStore{}

	engine := NewReminderEngine(ReminderEngineParams{
		Config:       newSchedulerTestConfig(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserRepo:     userRepo,
		MealRepo:     mealRepo,
		ReminderRepo: store,
		Aggregator:   aggregator,
		Deduplicator: NewNotificationDeduplicator(store),
		Recommender:  recommender,
		Dispatcher:   dispatcher,
		Claimer:      &memoryClaimer{held: map[string]bool{}},
	})

	ctx := context.Background()
	user := testUser()

	userRepo.EXPECT().FindWithPushToken(ctx).Return([]*entity.User{user}, nil)
	mealRepo.EXPECT().ExistsInRange(mock.Anything, user.ID, mock.Anything, mock.Anything).Return(false, nil)
	aggregator.EXPECT().Aggregate(mock.Anything, user.ID, mock.Anything).Return(entity.Nutrients{Calories: 800}, nil)
	recommender.EXPECT().Recommend(mock.Anything, mock.Anything, mock.Anything).Return("Lentil soup", true)
	dispatcher.EXPECT().
		Dispatch(mock.Anything, user, mock.MatchedBy(func(msg usecase.DispatchMessage) bool {
			return msg.Category == entity.CategoryLunch && strings.Contains(msg.Body, "Lentil soup")
		})).
		Return(nil).
		Once()

	for _, minute := range []int{0, 0, 15, 30, 45} {
		now := time.Date(2024, 5, 1, 17, minute, 0, 0, time.UTC)
		_, err := engine.RunTick(ctx, now)
		require.NoError(t, err)
	}

	assert.Len(t, store.rows, 1)
}
