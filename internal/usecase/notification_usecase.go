package usecase

import (
	"context"
	"errors"
	"time"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoPushToken is returned when a dispatch is attempted for a user without a push token.
var ErrNoPushToken = errors.New("user has no push token")

// NotificationDeduplicator answers whether a category was already delivered in a window.
type NotificationDeduplicator interface {
	AlreadySent(ctx context.Context, userID uuid.UUID, category entity.ReminderCategory, window entity.TimeWindow) (bool, error)
}

// RecommendationRequester asks the text-generation collaborator for one food suggestion.
type RecommendationRequester interface {
	// Recommend returns ok=false whenever no usable suggestion could be obtained.
	Recommend(ctx context.Context, remaining entity.Nutrients, label entity.ReminderCategory) (text string, ok bool)
}

// DispatchMessage is one push notification addressed to a user.
type DispatchMessage struct {
	Category   entity.ReminderCategory
	Body       string
	ReminderID uuid.UUID
	WindowKey  string
}

// PushDispatcher delivers a message to a user's device.
type PushDispatcher interface {
	Dispatch(ctx context.Context, user *entity.User, msg DispatchMessage) error
}

// TickReport counts the outcome of one scheduler tick.
type TickReport struct {
	DueSent       int `json:"due_sent"`
	Recommended   int `json:"recommended"`
	DailyGoalSent int `json:"daily_goal_sent"`
	Skipped       int `json:"skipped"`
	Failed        int `json:"failed"`
}

// ReminderEngine runs the periodic reminder and recommendation passes.
type ReminderEngine interface {
	RunTick(ctx context.Context, now time.Time) (TickReport, error)
}
