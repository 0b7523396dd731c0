// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

const activeUserScope = "deleted_at IS NULL"

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where(activeUserScope).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindWithPushToken returns every active user holding a push token.
func (repo *userRepository) FindWithPushToken(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("push_token IS NOT NULL AND push_token <> ''").
		Where(activeUserScope).
		Order("id").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users with push token")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateGoals overwrites the user's daily targets.
func (repo *userRepository) UpdateGoals(ctx context.Context, id uuid.UUID, goals entity.Nutrients) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Where(activeUserScope).
		Updates(map[string]any{
			"goal_calories": goals.Calories,
			"goal_protein":  goals.Protein,
			"goal_carbs":    goals.Carbs,
			"goal_fat":      goals.Fat,
		})

	if result.Error != nil {
		if violates(result.Error, checkConstraint) {
			return domainerrors.ErrInvalidGoals.WrapMessage("goal violates constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update goals")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetPushToken stores the user's push token; an empty token clears it.
func (repo *userRepository) SetPushToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Where(activeUserScope).
		Update("push_token", nullableString(token))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearPushTokenIfMatches clears the token unless the user has registered a new one in the meantime.
func (repo *userRepository) ClearPushTokenIfMatches(ctx context.Context, id uuid.UUID, token string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND push_token = ?", id, token).
		Update("push_token", nil).Error; err != nil {
		return errors.Wrap(err, "failed to clear push token")
	}

	return nil
}

// CreateGoalHistory appends a goal change record.
func (repo *userRepository) CreateGoalHistory(ctx context.Context, history *entity.GoalHistory) error {
	historyM := fromGoalHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if violates(err, foreignKeyConstraint) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create goal history")
	}

	history.ID = historyM.ID

	return nil
}

// ListGoalHistory returns the user's goal changes, newest first.
func (repo *userRepository) ListGoalHistory(ctx context.Context, id uuid.UUID, limit int) ([]*entity.GoalHistory, error) {
	var historyModels []*model.GoalHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("changed_at DESC").
		Limit(limit).
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list goal history")
	}

	histories := make([]*entity.GoalHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, toGoalHistoryDomain(historyM))
	}

	return histories, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
		Goals: entity.Nutrients{
			Calories: data.GoalCalories,
			Protein:  data.GoalProtein,
			Carbs:    data.GoalCarbs,
			Fat:      data.GoalFat,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.PushToken != nil {
		user.PushToken = *data.PushToken
	}

	return user
}

func toGoalHistoryDomain(data *model.GoalHistoryModel) *entity.GoalHistory {
	if data == nil {
		return nil
	}

	return &entity.GoalHistory{
		ID:     data.ID,
		UserID: data.UserID,
		Goals: entity.Nutrients{
			Calories: data.Calories,
			Protein:  data.Protein,
			Carbs:    data.Carbs,
			Fat:      data.Fat,
		},
		ChangedAt: data.ChangedAt,
	}
}

func fromGoalHistoryDomain(data *entity.GoalHistory) *model.GoalHistoryModel {
	changedAt := data.ChangedAt
	if changedAt.IsZero() {
		changedAt = time.Now()
	}

	return &model.GoalHistoryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Calories:  data.Goals.Calories,
		Protein:   data.Goals.Protein,
		Carbs:     data.Goals.Carbs,
		Fat:       data.Goals.Fat,
		ChangedAt: changedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
