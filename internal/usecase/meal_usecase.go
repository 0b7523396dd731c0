package usecase

import (
	"context"
	"time"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// MealUsecase defines the meal logging operations.
type MealUsecase interface {
	LogMeal(ctx context.Context, userID uuid.UUID, input *LogMealInput) (*entity.MealRecord, error)
	CorrectMeal(ctx context.Context, userID, mealID uuid.UUID, patch entity.NutrientPatch) (*entity.MealRecord, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	ListMealsForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.MealRecord, error)
}

// --- Input DTOs ---

// LogMealInput defines the data required to log a meal. Absent nutrients default to zero.
type LogMealInput struct {
	Name       string               `json:"name" validate:"required,max=255"`
	Source     entity.MealSource    `json:"source" validate:"omitempty,oneof=scan barcode search manual"`
	ConsumedAt *time.Time           `json:"consumed_at,omitempty"`
	Nutrients  entity.NutrientPatch `json:"nutrients"`
}
