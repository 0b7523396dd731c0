package postgres

import (
	"context"
	"time"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create persists a new reminder. A second scheduler row for the same user, category and
// window is rejected by the unique index and reported as ErrDuplicateReminder.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.ReminderNotification) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		if violates(err, uniqueConstraint) {
			return repository.ErrDuplicateReminder
		}
		if violates(err, foreignKeyConstraint) {
			return domainerrors.ErrReminderCreationFailed.WrapMessage("invalid user reference")
		}
		if violates(err, notNullConstraint) {
			return domainerrors.ErrReminderCreationFailed.WrapMessage("missing required reminder information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminder")
	}

	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt
	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

// FindByID retrieves a reminder owned by userID.
func (repo *reminderRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ReminderNotification, error) {
	var reminderM model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by ID")
	}

	return toReminderDomain(&reminderM), nil
}

// FindByUser lists the user's reminders, newest scheduled first.
func (repo *reminderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReminderNotification, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reminders by user")
	}

	return toReminderDomainList(reminderModels), nil
}

// Delete removes a reminder owned by userID.
func (repo *reminderRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ReminderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reminder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// FindDue returns unsent reminders with scheduled_at <= now, oldest first. Only owners holding a push
// token are considered; reminders of token-less owners wait without occupying the batch.
func (repo *reminderRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.ReminderNotification, error) {
	var reminderModels []*model.ReminderModel

	tokenHolders := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("id").
		Where("push_token IS NOT NULL AND push_token <> ''")

	if err := repo.db.WithContext(ctx).
		Where("sent = ? AND scheduled_at <= ?", false, now).
		Where("user_id IN (?)", tokenHolders).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due reminders")
	}

	return toReminderDomainList(reminderModels), nil
}

// MarkSent flips sent to true only while it is still false, so the transition happens once.
func (repo *reminderRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id = ? AND sent = ?", id, false).
		Updates(map[string]any{
			"sent":    true,
			"sent_at": sentAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reminder sent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderAlreadySent
	}

	return nil
}

// ExistsSent reports whether a reminder of category was sent to the user within [start, end).
func (repo *reminderRepository) ExistsSent(
	ctx context.Context,
	userID uuid.UUID,
	category entity.ReminderCategory,
	start, end time.Time,
) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("user_id = ? AND category = ? AND sent = ?", userID, string(category), true).
		Where("sent_at >= ? AND sent_at < ?", start, end).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check sent reminders")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toReminderDomain(data *model.ReminderModel) *entity.ReminderNotification {
	if data == nil {
		return nil
	}

	reminder := &entity.ReminderNotification{
		ID:          data.ID,
		UserID:      data.UserID,
		Category:    entity.ReminderCategory(data.Category),
		Message:     data.Message,
		ScheduledAt: data.ScheduledAt,
		Sent:        data.Sent,
		SentAt:      data.SentAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.WindowKey != nil {
		reminder.WindowKey = *data.WindowKey
	}

	return reminder
}

func toReminderDomainList(models []*model.ReminderModel) []*entity.ReminderNotification {
	reminders := make([]*entity.ReminderNotification, 0, len(models))
	for _, reminderM := range models {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders
}

func fromReminderDomain(data *entity.ReminderNotification) *model.ReminderModel {
	if data == nil {
		return nil
	}

	return &model.ReminderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Category:    string(data.Category),
		Message:     data.Message,
		ScheduledAt: data.ScheduledAt,
		Sent:        data.Sent,
		SentAt:      data.SentAt,
		WindowKey:   nullableString(data.WindowKey),
	}
}
