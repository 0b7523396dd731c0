package usecase

import (
	"context"
	"time"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderUsecase defines the user-facing reminder operations.
type ReminderUsecase interface {
	CreateReminder(ctx context.Context, userID uuid.UUID, input *CreateReminderInput) (*entity.ReminderNotification, error)
	ListReminders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReminderNotification, error)
	DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error
}

// CreateReminderInput defines the data required to schedule a reminder.
type CreateReminderInput struct {
	Category    entity.ReminderCategory `json:"category" validate:"required"`
	Message     string                  `json:"message" validate:"required,max=500"`
	ScheduledAt time.Time               `json:"scheduled_at" validate:"required"`
}
