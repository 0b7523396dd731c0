// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/goal"

	"github.com/google/uuid"
)

// NutrientAggregator sums logged meals over time windows.
type NutrientAggregator interface {
	// Aggregate returns the elementwise sum of the user's meals with window.Start <= consumed_at < window.End.
	Aggregate(ctx context.Context, userID uuid.UUID, window entity.TimeWindow) (entity.Nutrients, error)

	// Today aggregates the local calendar day containing now.
	Today(ctx context.Context, userID uuid.UUID, now time.Time) (entity.Nutrients, entity.TimeWindow, error)
}

// NutritionUsecase defines the read side of goal tracking.
type NutritionUsecase interface {
	NutrientAggregator

	// EvaluateToday compares today's totals with the user's goals.
	EvaluateToday(ctx context.Context, userID uuid.UUID, now time.Time) (*goal.Evaluation, error)

	// Totals aggregates an arbitrary [from, to) range.
	Totals(ctx context.Context, userID uuid.UUID, from, to time.Time) (entity.Nutrients, error)
}
