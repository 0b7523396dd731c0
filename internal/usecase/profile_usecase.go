package usecase

import (
	"context"

	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/goal"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateGoals(ctx context.Context, userID uuid.UUID, goals entity.Nutrients) (*entity.User, error)
	GoalHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GoalHistory, error)
	SuggestGoals(ctx context.Context, input *SuggestGoalsInput) (entity.Nutrients, error)
	SetPushToken(ctx context.Context, userID uuid.UUID, token string) error
	ClearPushToken(ctx context.Context, userID uuid.UUID) error
}

// SuggestGoalsInput defines the body profile used for goal suggestion.
type SuggestGoalsInput struct {
	Sex          goal.Sex           `json:"sex" validate:"required,oneof=male female"`
	Age          int                `json:"age" validate:"required,gt=0,lt=130"`
	HeightCM     float64            `json:"height_cm" validate:"required,gt=0"`
	WeightKG     float64            `json:"weight_kg" validate:"required,gt=0"`
	GoalWeightKG float64            `json:"goal_weight_kg" validate:"required,gt=0"`
	Activity     goal.ActivityLevel `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
}
