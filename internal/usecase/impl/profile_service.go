package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/goal"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxGoalHistory = 100

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// GetProfile retrieves the user together with goals and push token state.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateGoals writes the new targets and a goal history row in one transaction.
func (srv *profileService) UpdateGoals(ctx context.Context, userID uuid.UUID, goals entity.Nutrients) (*entity.User, error) {
	if goals.HasNegative() {
		return nil, domainerrors.ErrInvalidGoals
	}

	srv.logger.InfoContext(ctx, "Updating goals", slog.String("user_id", userID.String()))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Overwrite the targets
		if err := userRepo.UpdateGoals(ctx, userID, goals); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update goals")
		}

		// 2. Record the change
		if err := userRepo.CreateGoalHistory(ctx, &entity.GoalHistory{
			UserID:    userID,
			Goals:     goals,
			ChangedAt: time.Now(),
		}); err != nil {
			return errors.Wrap(err, "failed to record goal history")
		}

		// 3. Return the fresh state
		updated, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user")
		}
		user = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GoalHistory lists goal changes, newest first.
func (srv *profileService) GoalHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GoalHistory, error) {
	if limit <= 0 || limit > maxGoalHistory {
		limit = maxGoalHistory
	}

	histories, err := srv.userRepo.ListGoalHistory(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list goal history")
	}

	return histories, nil
}

// SuggestGoals derives daily targets from a body profile without persisting them.
func (srv *profileService) SuggestGoals(_ context.Context, input *usecase.SuggestGoalsInput) (entity.Nutrients, error) {
	goals, err := goal.Suggest(goal.BodyProfile{
		Sex:          input.Sex,
		Age:          input.Age,
		HeightCM:     input.HeightCM,
		WeightKG:     input.WeightKG,
		GoalWeightKG: input.GoalWeightKG,
		Activity:     input.Activity,
	})
	if err != nil {
		return entity.Nutrients{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return goals, nil
}

// SetPushToken registers the device token that scheduler pushes are sent to.
func (srv *profileService) SetPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("push token must not be blank")
	}

	return srv.setPushToken(ctx, userID, token)
}

// ClearPushToken opts the user out of push notifications.
func (srv *profileService) ClearPushToken(ctx context.Context, userID uuid.UUID) error {
	return srv.setPushToken(ctx, userID, "")
}

func (srv *profileService) setPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := srv.userRepo.SetPushToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to set push token")
	}

	srv.logger.InfoContext(ctx, "Push token updated",
		slog.String("user_id", userID.String()),
		slog.Bool("registered", token != ""),
	)

	return nil
}
