// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/goal"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// nutritionService implements the NutritionUsecase interface.
type nutritionService struct {
	mealRepo repository.MealRepository
	userRepo repository.UserRepository
	location *time.Location
	logger   *slog.Logger
}

// NewNutritionService is the constructor for nutritionService.
func NewNutritionService(
	mealRepo repository.MealRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NutritionUsecase {
	return &nutritionService{
		mealRepo: mealRepo,
		userRepo: userRepo,
		location: cfg.Scheduler.Location(),
		logger:   logger,
	}
}

// Aggregate sums the user's meals over [window.Start, window.End). No meals yields zero totals.
func (srv *nutritionService) Aggregate(ctx context.Context, userID uuid.UUID, window entity.TimeWindow) (entity.Nutrients, error) {
	totals, err := srv.mealRepo.SumByUserInRange(ctx, userID, window.Start, window.End)
	if err != nil {
		return entity.Nutrients{}, errors.Wrap(err, "failed to aggregate meals")
	}

	return totals, nil
}

// Today aggregates local midnight to next local midnight around now.
func (srv *nutritionService) Today(ctx context.Context, userID uuid.UUID, now time.Time) (entity.Nutrients, entity.TimeWindow, error) {
	window := entity.DayWindow(now, srv.location)

	totals, err := srv.Aggregate(ctx, userID, window)
	if err != nil {
		return entity.Nutrients{}, window, err
	}

	return totals, window, nil
}

// EvaluateToday compares today's totals with the user's goals.
func (srv *nutritionService) EvaluateToday(ctx context.Context, userID uuid.UUID, now time.Time) (*goal.Evaluation, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	totals, _, err := srv.Today(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	eval := goal.Evaluate(totals, user.Goals)
	srv.logger.DebugContext(ctx, "Evaluated daily goals",
		slog.String("user_id", userID.String()),
		slog.String("status", string(eval.Status)),
	)

	return &eval, nil
}

// Totals aggregates an arbitrary [from, to) range.
func (srv *nutritionService) Totals(ctx context.Context, userID uuid.UUID, from, to time.Time) (entity.Nutrients, error) {
	if !to.After(from) {
		return entity.Nutrients{}, domainerrors.ErrInvalidRange
	}

	return srv.Aggregate(ctx, userID, entity.TimeWindow{Start: from, End: to})
}
