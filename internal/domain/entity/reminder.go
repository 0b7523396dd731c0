package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderCategory labels a reminder notification.
type ReminderCategory string

const (
	CategoryBreakfast ReminderCategory = "breakfast"
	CategoryLunch     ReminderCategory = "lunch"
	CategoryDinner    ReminderCategory = "dinner"
	CategorySnack     ReminderCategory = "snack"
	CategoryDailyGoal ReminderCategory = "daily-goal"
	CategoryCustom    ReminderCategory = "custom"
)

// IsUserSchedulable reports whether users may create reminders of this category themselves.
func (c ReminderCategory) IsUserSchedulable() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryCustom:
		return true
	default:
		return false
	}
}

// ReminderNotification is a push notification owned by a user, either user-scheduled or
// produced by the scheduler.
type ReminderNotification struct {
	ID          uuid.UUID        `json:"id"`           // The Global Unique Identifier (GUID) for the reminder.
	UserID      uuid.UUID        `json:"user_id"`      // The ID of the owning user.
	Category    ReminderCategory `json:"category"`     // Category label.
	Message     string           `json:"message"`      // Notification body.
	ScheduledAt time.Time        `json:"scheduled_at"` // When the reminder is due (or was sent, for scheduler rows).
	Sent        bool             `json:"sent"`         // Transitions false to true exactly once.
	SentAt      *time.Time       `json:"sent_at"`      // When the push was dispatched.
	WindowKey   string           `json:"window_key"`   // Evaluation window of scheduler rows; empty for user reminders.
	CreatedAt   time.Time        `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time        `json:"updated_at"`   // Timestamp of the last modification.
}
