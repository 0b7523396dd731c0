package repository

import (
	"context"
	"errors"
	"time"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealNotFound is returned when a meal does not exist or belongs to another user.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines the persistence operations for logged meals.
type MealRepository interface {
	// Create persists a new meal record.
	Create(ctx context.Context, meal *entity.MealRecord) error

	// FindByID retrieves a meal owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.MealRecord, error)

	// UpdateNutrients replaces the nutrient snapshot of a meal owned by userID.
	UpdateNutrients(ctx context.Context, id, userID uuid.UUID, nutrients entity.Nutrients) error

	// Delete removes a meal owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindByUserInRange returns the user's meals with start <= consumed_at < end, oldest first.
	FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.MealRecord, error)

	// SumByUserInRange returns the elementwise nutrient sum over the same range.
	SumByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (entity.Nutrients, error)

	// ExistsInRange reports whether the user logged any meal in the range.
	ExistsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
}
