package repository

import (
	"context"
	"errors"
	"time"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderNotFound is returned when a reminder does not exist or belongs to another user.
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrReminderAlreadySent is returned when marking a reminder that is no longer pending.
	ErrReminderAlreadySent = errors.New("reminder already sent")
	// ErrDuplicateReminder is returned when a scheduler reminder already exists for its window.
	ErrDuplicateReminder = errors.New("reminder already recorded for this window")
)

// ReminderRepository defines the persistence operations for reminder notifications.
type ReminderRepository interface {
	// Create persists a new reminder.
	Create(ctx context.Context, reminder *entity.ReminderNotification) error

	// FindByID retrieves a reminder owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ReminderNotification, error)

	// FindByUser lists the user's reminders, newest scheduled first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReminderNotification, error)

	// Delete removes a reminder owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindDue returns unsent reminders with scheduled_at <= now whose owner holds a push token, oldest first.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.ReminderNotification, error)

	// MarkSent flips sent to true only while it is still false.
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// ExistsSent reports whether a reminder of category was sent to the user within [start, end).
	ExistsSent(ctx context.Context, userID uuid.UUID, category entity.ReminderCategory, start, end time.Time) (bool, error)
}
