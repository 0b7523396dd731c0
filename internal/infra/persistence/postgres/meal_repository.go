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

const mealRangeScope = "user_id = ? AND consumed_at >= ? AND consumed_at < ?"

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// Create persists a new meal record.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.MealRecord) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if violates(err, foreignKeyConstraint) {
			return domainerrors.ErrMealCreationFailed.WrapMessage("invalid user reference")
		}
		if violates(err, checkConstraint) {
			return domainerrors.ErrNegativeNutrition.WrapMessage("nutrition constraint violated")
		}
		if violates(err, notNullConstraint) {
			return domainerrors.ErrMealCreationFailed.WrapMessage("missing required meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	// Update the entity with generated values
	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindByID retrieves a meal owned by userID.
func (repo *mealRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.MealRecord, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by ID")
	}

	return toMealDomain(&mealM), nil
}

// UpdateNutrients replaces the nutrient snapshot of a meal owned by userID.
func (repo *mealRepository) UpdateNutrients(ctx context.Context, id, userID uuid.UUID, nutrients entity.Nutrients) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"calories": nutrients.Calories,
			"protein":  nutrients.Protein,
			"carbs":    nutrients.Carbs,
			"fat":      nutrients.Fat,
		})

	if result.Error != nil {
		if violates(result.Error, checkConstraint) {
			return domainerrors.ErrNegativeNutrition.WrapMessage("nutrition constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal owned by userID.
func (repo *mealRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// FindByUserInRange returns the user's meals with start <= consumed_at < end, oldest first.
func (repo *mealRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.MealRecord, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Where(mealRangeScope, userID, start, end).
		Order("consumed_at ASC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find meals in range")
	}

	meals := make([]*entity.MealRecord, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// SumByUserInRange aggregates in the database so large histories never leave PostgreSQL.
func (repo *mealRepository) SumByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (entity.Nutrients, error) {
	var row model.NutrientSumRow

	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Select(
			"COALESCE(SUM(calories), 0) AS calories, "+
				"COALESCE(SUM(protein), 0) AS protein, "+
				"COALESCE(SUM(carbs), 0) AS carbs, "+
				"COALESCE(SUM(fat), 0) AS fat",
		).
		Where(mealRangeScope, userID, start, end).
		Scan(&row).Error; err != nil {
		return entity.Nutrients{}, errors.Wrap(err, "failed to sum meals in range")
	}

	return entity.Nutrients{
		Calories: row.Calories,
		Protein:  row.Protein,
		Carbs:    row.Carbs,
		Fat:      row.Fat,
	}, nil
}

// ExistsInRange reports whether the user logged any meal in the range.
func (repo *mealRepository) ExistsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where(mealRangeScope, userID, start, end).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check meals in range")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toMealDomain(data *model.MealModel) *entity.MealRecord {
	if data == nil {
		return nil
	}

	return &entity.MealRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Source:     entity.MealSource(data.Source),
		ConsumedAt: data.ConsumedAt,
		Nutrients: entity.Nutrients{
			Calories: data.Calories,
			Protein:  data.Protein,
			Carbs:    data.Carbs,
			Fat:      data.Fat,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMealDomain(data *entity.MealRecord) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Source:     string(data.Source),
		ConsumedAt: data.ConsumedAt,
		Calories:   data.Nutrients.Calories,
		Protein:    data.Nutrients.Protein,
		Carbs:      data.Nutrients.Carbs,
		Fat:        data.Nutrients.Fat,
	}
}
