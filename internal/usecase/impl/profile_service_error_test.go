package impl

import (
	"context"
	"testing"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/goal"
	"nutritrack/internal/domain/repository"
	mockRepo "nutritrack/internal/mocks/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetProfile_FindError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("database error"))

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to find user")
}

func TestProfileService_UpdateGoals_Negative(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateGoals(context.Background(), uuid.New(), entity.Nutrients{Calories: -1})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidGoals)
}

func TestProfileService_UpdateGoals_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	goals := entity.Nutrients{Calories: 1800}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().UpdateGoals(ctx, userID, goals).Return(repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	user, err := fx.service.UpdateGoals(ctx, userID, goals)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateGoals_HistoryError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	goals := entity.Nutrients{Calories: 1800}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().UpdateGoals(ctx, userID, goals).Return(nil)
			txUserRepo.EXPECT().CreateGoalHistory(ctx, mock.Anything).Return(errors.New("insert failed"))

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateGoals(ctx, userID, goals)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record goal history")
}

func TestProfileService_SuggestGoals_InvalidProfile(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.SuggestGoals(context.Background(), &usecase.SuggestGoalsInput{
		Sex:          goal.SexFemale,
		Age:          30,
		HeightCM:     165,
		WeightKG:     60,
		GoalWeightKG: 58,
		Activity:     "couch",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProfileService_SetPushToken_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().SetPushToken(ctx, userID, "token").Return(repository.ErrUserNotFound)

	err := fx.service.SetPushToken(ctx, userID, "token")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
