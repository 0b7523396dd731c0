package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultReminderPageSize = 20
	maxReminderPageSize     = 100
)

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminderRepo repository.ReminderRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(reminderRepo repository.ReminderRepository, logger *slog.Logger) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: reminderRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateReminder schedules a reminder in the future. The scheduler delivers it once it is due.
func (srv *reminderService) CreateReminder(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.CreateReminderInput,
) (*entity.ReminderNotification, error) {
	if !input.Category.IsUserSchedulable() {
		return nil, domainerrors.ErrInvalidReminderCategory
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message must not be blank")
	}

	if !input.ScheduledAt.After(srv.now()) {
		return nil, domainerrors.ErrReminderInPast
	}

	reminder := &entity.ReminderNotification{
		UserID:      userID,
		Category:    input.Category,
		Message:     message,
		ScheduledAt: input.ScheduledAt,
	}

	if err := srv.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder")
	}

	srv.logger.InfoContext(ctx, "Reminder scheduled",
		slog.String("user_id", userID.String()),
		slog.String("reminder_id", reminder.ID.String()),
		slog.Time("scheduled_at", reminder.ScheduledAt),
	)

	return reminder, nil
}

// ListReminders lists the user's reminders, newest first.
func (srv *reminderService) ListReminders(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*entity.ReminderNotification, error) {
	if limit <= 0 {
		limit = defaultReminderPageSize
	}
	limit = min(limit, maxReminderPageSize)
	offset = max(offset, 0)

	reminders, err := srv.reminderRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return reminders, nil
}

// DeleteReminder removes one of the user's reminders.
func (srv *reminderService) DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error {
	if err := srv.reminderRepo.Delete(ctx, reminderID, userID); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return errors.Wrap(domainerrors.ErrReminderNotFound, "reminder not found")
		}

		return errors.Wrap(err, "failed to delete reminder")
	}

	return nil
}
