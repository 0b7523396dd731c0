package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nutritrack/internal/delivery/context"
	"nutritrack/internal/domain/constants"
	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/domain/service"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pushDispatcher implements the PushDispatcher interface.
type pushDispatcher struct {
	notifier  service.NotificationService
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewPushDispatcher is the constructor for pushDispatcher.
func NewPushDispatcher(
	notifier service.NotificationService,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PushDispatcher {
	return &pushDispatcher{
		notifier:  notifier,
		userRepo:  userRepo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Dispatch sends one push notification. It never retries; the next tick is the retry.
func (d *pushDispatcher) Dispatch(ctx context.Context, user *entity.User, msg usecase.DispatchMessage) error {
	if !user.HasPushToken() {
		return usecase.ErrNoPushToken
	}

	data := map[string]string{
		constants.PushDataMessage:  msg.Body,
		constants.PushDataCategory: string(msg.Category),
	}

	err := d.notifier.SendSingleNotification(ctx, user.PushToken, constants.PushTitle, msg.Body, data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPushToken) {
			d.discardToken(ctx, user)
		}

		return errors.Wrap(err, "failed to dispatch push notification")
	}

	d.publish(ctx, user.ID, msg)

	return nil
}

// discardToken stops scheduling pushes to a token the gateway rejected.
func (d *pushDispatcher) discardToken(ctx context.Context, user *entity.User) {
	if err := d.userRepo.ClearPushTokenIfMatches(ctx, user.ID, user.PushToken); err != nil {
		d.logger.ErrorContext(ctx, "Failed to clear invalid push token",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	d.logger.InfoContext(ctx, "Cleared invalid push token", slog.String("user_id", user.ID.String()))
}

// publish emits the dispatch event; failures are logged and never fail the dispatch.
func (d *pushDispatcher) publish(ctx context.Context, userID uuid.UUID, msg usecase.DispatchMessage) {
	event := &service.DispatchEvent{
		RequestID: deliverycontext.CorrelationID(ctx),
		UserID:    userID.String(),
		Category:  string(msg.Category),
		WindowKey: msg.WindowKey,
		SentAt:    d.now(),
	}
	if msg.ReminderID != uuid.Nil {
		event.ReminderID = msg.ReminderID.String()
	}

	if err := d.publisher.PublishDispatchEvent(ctx, event); err != nil {
		d.logger.WarnContext(ctx, "Failed to publish dispatch event",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}
