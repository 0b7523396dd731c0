package impl

import (
	"context"

	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationDeduplicator answers from the sent reminders stored for the window.
type notificationDeduplicator struct {
	reminderRepo repository.ReminderRepository
}

// NewNotificationDeduplicator is the constructor for notificationDeduplicator.
func NewNotificationDeduplicator(reminderRepo repository.ReminderRepository) usecase.NotificationDeduplicator {
	return &notificationDeduplicator{reminderRepo: reminderRepo}
}

// AlreadySent reports whether a reminder of category was sent to the user within window.
func (d *notificationDeduplicator) AlreadySent(
	ctx context.Context,
	userID uuid.UUID,
	category entity.ReminderCategory,
	window entity.TimeWindow,
) (bool, error) {
	sent, err := d.reminderRepo.ExistsSent(ctx, userID, category, window.Start, window.End)
	if err != nil {
		return false, errors.Wrap(err, "failed to check sent notifications")
	}

	return sent, nil
}
