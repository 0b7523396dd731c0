package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/infra/persistence/model"
	"nutritrack/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, pushToken string) uuid.UUID {
	t.Helper()

	user := &model.UserModel{Email: fmt.Sprintf("%s@nutritrack.test", uuid.NewString())}
	if pushToken != "" {
		user.PushToken = &pushToken
	}
	require.NoError(t, db.Create(user).Error)

	return user.ID
}

func TestRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	defer cleanup()

	meals := NewMealRepository(db)
	reminders := NewReminderRepository(db)
	chats := NewChatRepository(db)

	dayStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	t.Run("meal range is half-open", func(t *testing.T) {
		userID := createTestUser(t, db, "")
		otherID := createTestUser(t, db, "")

		logMeal := func(owner uuid.UUID, at time.Time, calories float64) {
			require.NoError(t, meals.Create(ctx, &entity.MealRecord{
				UserID:     owner,
				Name:       "meal",
				Source:     entity.MealSourceManual,
				ConsumedAt: at,
				Nutrients:  entity.Nutrients{Calories: calories, Protein: 1},
			}))
		}
		logMeal(userID, dayStart.Add(-time.Minute), 800)
		logMeal(userID, dayStart, 100)
		logMeal(userID, dayEnd.Add(-time.Minute), 200)
		logMeal(userID, dayEnd, 400)
		logMeal(otherID, dayStart.Add(12*time.Hour), 1600)

		totals, err := meals.SumByUserInRange(ctx, userID, dayStart, dayEnd)
		require.NoError(t, err)
		assert.Equal(t, entity.Nutrients{Calories: 300, Protein: 2}, totals)

		inDay, err := meals.FindByUserInRange(ctx, userID, dayStart, dayEnd)
		require.NoError(t, err)
		require.Len(t, inDay, 2)
		assert.True(t, inDay[0].ConsumedAt.Equal(dayStart))
		assert.True(t, inDay[1].ConsumedAt.Equal(dayEnd.Add(-time.Minute)))

		exists, err := meals.ExistsInRange(ctx, userID, dayEnd, dayEnd.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, exists, "start bound is inclusive")

		exists, err = meals.ExistsInRange(ctx, userID, dayStart.Add(time.Hour), dayEnd.Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = meals.ExistsInRange(ctx, userID, dayStart.Add(-time.Hour), dayStart.Add(-time.Minute))
		require.NoError(t, err)
		assert.False(t, exists, "end bound is exclusive")
	})

	t.Run("empty range sums to zero", func(t *testing.T) {
		userID := createTestUser(t, db, "")

		totals, err := meals.SumByUserInRange(ctx, userID, dayStart, dayEnd)
		require.NoError(t, err)
		assert.Equal(t, entity.Nutrients{}, totals)
	})

	t.Run("negative nutrients are rejected by the check constraint", func(t *testing.T) {
		userID := createTestUser(t, db, "")

		err := meals.Create(ctx, &entity.MealRecord{
			UserID:     userID,
			Name:       "bad",
			Source:     entity.MealSourceManual,
			ConsumedAt: dayStart,
			Nutrients:  entity.Nutrients{Calories: -5},
		})
		assert.ErrorIs(t, err, domainerrors.ErrNegativeNutrition)
	})

	t.Run("sent reminders are matched on sent_at", func(t *testing.T) {
		userID := createTestUser(t, db, "token-sent")

		lunch := &entity.ReminderNotification{
			UserID:      userID,
			Category:    entity.CategoryLunch,
			Message:     "Lunch time",
			ScheduledAt: dayStart.Add(-2 * time.Hour),
		}
		require.NoError(t, reminders.Create(ctx, lunch))
		require.NoError(t, reminders.MarkSent(ctx, lunch.ID, dayStart.Add(13*time.Hour)))

		dinner := &entity.ReminderNotification{
			UserID:      userID,
			Category:    entity.CategoryDinner,
			Message:     "Dinner time",
			ScheduledAt: dayStart.Add(19 * time.Hour),
		}
		require.NoError(t, reminders.Create(ctx, dinner))

		sent, err := reminders.ExistsSent(ctx, userID, entity.CategoryLunch, dayStart, dayEnd)
		require.NoError(t, err)
		assert.True(t, sent, "sent today although scheduled yesterday")

		sent, err = reminders.ExistsSent(ctx, userID, entity.CategoryLunch, dayStart.Add(-24*time.Hour), dayStart)
		require.NoError(t, err)
		assert.False(t, sent, "scheduled yesterday but not sent yesterday")

		sent, err = reminders.ExistsSent(ctx, userID, entity.CategoryDinner, dayStart, dayEnd)
		require.NoError(t, err)
		assert.False(t, sent, "unsent reminders never count")

		err = reminders.MarkSent(ctx, lunch.ID, dayStart.Add(14*time.Hour))
		assert.ErrorIs(t, err, repository.ErrReminderAlreadySent)
	})

	t.Run("one scheduler row per window", func(t *testing.T) {
		userID := createTestUser(t, db, "token-window")
		sentAt := dayStart.Add(12 * time.Hour)

		schedulerRow := func() *entity.ReminderNotification {
			return &entity.ReminderNotification{
				UserID:      userID,
				Category:    entity.CategoryDailyGoal,
				Message:     "Daily goal reached",
				ScheduledAt: sentAt,
				Sent:        true,
				SentAt:      &sentAt,
				WindowKey:   "2024-05-01",
			}
		}

		require.NoError(t, reminders.Create(ctx, schedulerRow()))
		assert.ErrorIs(t, reminders.Create(ctx, schedulerRow()), repository.ErrDuplicateReminder)

		for range 2 {
			require.NoError(t, reminders.Create(ctx, &entity.ReminderNotification{
				UserID:      userID,
				Category:    entity.CategorySnack,
				Message:     "Snack",
				ScheduledAt: dayStart.Add(15 * time.Hour),
			}), "user reminders carry no window key")
		}
	})

	t.Run("due batch skips owners without a push token", func(t *testing.T) {
		now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
		silentID := createTestUser(t, db, "")
		holderID := createTestUser(t, db, "token-holder")

		for i := range 3 {
			require.NoError(t, reminders.Create(ctx, &entity.ReminderNotification{
				UserID:      silentID,
				Category:    entity.CategoryCustom,
				Message:     "Never delivered",
				ScheduledAt: now.Add(-time.Duration(10-i) * time.Hour),
			}))
		}

		deliverable := &entity.ReminderNotification{
			UserID:      holderID,
			Category:    entity.CategoryCustom,
			Message:     "Drink water",
			ScheduledAt: now.Add(-time.Minute),
		}
		require.NoError(t, reminders.Create(ctx, deliverable))

		due, err := reminders.FindDue(ctx, now, 2)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, deliverable.ID, due[0].ID)
	})

	t.Run("chats keep the newest five", func(t *testing.T) {
		userID := createTestUser(t, db, "")

		created := make([]*entity.Chat, 0, entity.MaxChatsPerUser+1)
		for range entity.MaxChatsPerUser + 1 {
			require.NoError(t, chats.DeleteOldest(ctx, userID, entity.MaxChatsPerUser-1))

			chat := &entity.Chat{UserID: userID}
			require.NoError(t, chats.Create(ctx, chat))
			created = append(created, chat)
		}

		recent, err := chats.ListRecent(ctx, userID, entity.MaxChatsPerUser)
		require.NoError(t, err)
		require.Len(t, recent, entity.MaxChatsPerUser)
		assert.Equal(t, created[len(created)-1].ID, recent[0].ID)
		assert.Equal(t, created[1].ID, recent[len(recent)-1].ID)

		_, err = chats.FindByID(ctx, created[0].ID, userID)
		assert.ErrorIs(t, err, repository.ErrChatNotFound)

		_, err = chats.FindByID(ctx, created[1].ID, uuid.New())
		assert.ErrorIs(t, err, repository.ErrChatNotFound, "chats are scoped to their owner")
	})

	t.Run("chat messages come back in send order", func(t *testing.T) {
		userID := createTestUser(t, db, "")
		chat := &entity.Chat{UserID: userID}
		require.NoError(t, chats.Create(ctx, chat))

		sentAt := dayStart.Add(9 * time.Hour)
		require.NoError(t, chats.AppendMessages(ctx, chat.ID, []*entity.ChatMessage{
			{Sender: entity.ChatSenderAI, Text: "Oats are a great start.", SentAt: sentAt.Add(time.Second)},
			{Sender: entity.ChatSenderUser, Text: "Breakfast ideas?", SentAt: sentAt},
		}))

		found, err := chats.FindByID(ctx, chat.ID, userID)
		require.NoError(t, err)
		require.Len(t, found.Messages, 2)
		assert.Equal(t, entity.ChatSenderUser, found.Messages[0].Sender)
		assert.Equal(t, "Oats are a great start.", found.Messages[1].Text)

		err = chats.AppendMessages(ctx, uuid.New(), []*entity.ChatMessage{
			{Sender: entity.ChatSenderUser, Text: "Hello?", SentAt: sentAt},
		})
		assert.ErrorIs(t, err, repository.ErrChatNotFound)
	})
}
