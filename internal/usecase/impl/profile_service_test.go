package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/goal"
	"nutritrack/internal/domain/repository"
	mockRepo "nutritrack/internal/mocks/repository"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(txManager, userRepo, logger)

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:    userID,
		Email: "test@example.com",
		Name:  "Test User",
		Goals: entity.Nutrients{Calories: 2000},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_UpdateGoals_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	goals := entity.Nutrients{Calories: 2200, Protein: 140, Carbs: 250, Fat: 70}
	updated := &entity.User{ID: userID, Goals: goals}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().UpdateGoals(ctx, userID, goals).Return(nil)
			txUserRepo.EXPECT().
				CreateGoalHistory(ctx, mock.MatchedBy(func(h *entity.GoalHistory) bool {
					return h.UserID == userID && h.Goals == goals && !h.ChangedAt.IsZero()
				})).
				Return(nil)
			txUserRepo.EXPECT().FindByID(ctx, userID).Return(updated, nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpdateGoals(ctx, userID, goals)

	require.NoError(t, err)
	assert.Equal(t, goals, user.Goals)
}

func TestProfileService_GoalHistory_ClampsLimit(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	history := []*entity.GoalHistory{{ID: uuid.New(), UserID: userID}}

	fx.userRepo.EXPECT().ListGoalHistory(ctx, userID, 100).Return(history, nil)

	got, err := fx.service.GoalHistory(ctx, userID, 5000)

	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestProfileService_SuggestGoals(t *testing.T) {
	fx := createTestProfileService(t)

	goals, err := fx.service.SuggestGoals(context.Background(), &usecase.SuggestGoalsInput{
		Sex:          goal.SexMale,
		Age:          30,
		HeightCM:     180,
		WeightKG:     80,
		GoalWeightKG: 80,
		Activity:     goal.ActivityModerate,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.Nutrients{Calories: 2759, Protein: 207, Carbs: 276, Fat: 92}, goals)
}

func TestProfileService_SetPushToken_TrimsToken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().SetPushToken(ctx, userID, "fcm-token").Return(nil)

	err := fx.service.SetPushToken(ctx, userID, "  fcm-token\n")

	require.NoError(t, err)
}

func TestProfileService_ClearPushToken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().SetPushToken(ctx, userID, "").Return(nil)

	err := fx.service.ClearPushToken(ctx, userID)

	require.NoError(t, err)
}

func TestProfileService_SetPushToken_Blank(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.SetPushToken(context.Background(), uuid.New(), "   ")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
