package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	txManager repository.TransactionManager
	mealRepo  repository.MealRepository
	location  *time.Location
	logger    *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(
	txManager repository.TransactionManager,
	mealRepo repository.MealRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MealUsecase {
	return &mealService{
		txManager: txManager,
		mealRepo:  mealRepo,
		location:  cfg.Scheduler.Location(),
		logger:    logger,
	}
}

// LogMeal records a meal. Missing nutrient fields default to zero, but at least one must be non-zero.
func (srv *mealService) LogMeal(ctx context.Context, userID uuid.UUID, input *usecase.LogMealInput) (*entity.MealRecord, error) {
	nutrients := input.Nutrients.Nutrients()
	if err := validateNutrients(nutrients); err != nil {
		return nil, err
	}

	source := input.Source
	if source == "" {
		source = entity.MealSourceManual
	}
	if !source.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown meal source")
	}

	consumedAt := time.Now()
	if input.ConsumedAt != nil {
		consumedAt = *input.ConsumedAt
	}

	meal := &entity.MealRecord{
		UserID:     userID,
		Name:       strings.TrimSpace(input.Name),
		Source:     source,
		ConsumedAt: consumedAt,
		Nutrients:  nutrients,
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to log meal")
	}

	srv.logger.InfoContext(ctx, "Meal logged",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", meal.ID.String()),
		slog.String("source", string(source)),
	)

	return meal, nil
}

// CorrectMeal overlays the provided nutrient fields onto the stored snapshot.
func (srv *mealService) CorrectMeal(
	ctx context.Context,
	userID, mealID uuid.UUID,
	patch entity.NutrientPatch,
) (*entity.MealRecord, error) {
	var corrected *entity.MealRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealRepo := repoFactory.NewMealRepository()

		meal, err := mealRepo.FindByID(ctx, mealID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return errors.Wrap(domainerrors.ErrMealNotFound, "meal not found")
			}

			return errors.Wrap(err, "failed to find meal")
		}

		nutrients := patch.ApplyTo(meal.Nutrients)
		if err := validateNutrients(nutrients); err != nil {
			return err
		}

		if err := mealRepo.UpdateNutrients(ctx, mealID, userID, nutrients); err != nil {
			return errors.Wrap(err, "failed to update meal")
		}

		meal.Nutrients = nutrients
		corrected = meal

		return nil
	})
	if err != nil {
		return nil, err
	}

	return corrected, nil
}

// DeleteMeal removes one of the user's meals.
func (srv *mealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	if err := srv.mealRepo.Delete(ctx, mealID, userID); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return errors.Wrap(domainerrors.ErrMealNotFound, "meal not found")
		}

		return errors.Wrap(err, "failed to delete meal")
	}

	return nil
}

// ListMealsForDay lists the meals of the local day containing day.
func (srv *mealService) ListMealsForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.MealRecord, error) {
	window := entity.DayWindow(day, srv.location)

	meals, err := srv.mealRepo.FindByUserInRange(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	return meals, nil
}

func validateNutrients(n entity.Nutrients) error {
	switch err := n.Validate(); {
	case errors.Is(err, entity.ErrNegativeNutrients):
		return domainerrors.ErrNegativeNutrition
	case errors.Is(err, entity.ErrEmptyNutrients):
		return domainerrors.ErrEmptyNutrition
	default:
		return err
	}
}
