package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutritrack/config"
	"nutritrack/internal/delivery/http/middleware"
	"nutritrack/internal/delivery/http/response"
	"nutritrack/internal/delivery/http/validator"
	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/goal"
	mockUsecase "nutritrack/internal/mocks/usecase"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Scheduler: &config.SchedulerConfig{Timezone: "UTC"}}
}

// newContext builds an echo context for an authenticated request when userID is not Nil.
func newContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var resp response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestMealHandler_LogMeal(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Config: testConfig(), Logger: testLogger()})

	userID := uuid.New()
	body := `{"name":"Banana","source":"barcode","nutrients":{"calories":105,"carbs":27}}`
	c, rec := newContext(http.MethodPost, "/api/v1/meals", body, userID)

	mealUC.EXPECT().
		LogMeal(mock.Anything, userID, mock.MatchedBy(func(in *usecase.LogMealInput) bool {
			return in.Name == "Banana" &&
				in.Source == entity.MealSourceBarcode &&
				in.Nutrients.Calories != nil && *in.Nutrients.Calories == 105 &&
				in.Nutrients.Protein == nil
		})).
		Return(&entity.MealRecord{ID: uuid.New(), UserID: userID, Name: "Banana"}, nil)

	require.NoError(t, h.LogMeal(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestMealHandler_LogMeal_ValidationError(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Config: testConfig(), Logger: testLogger()})

	c, rec := newContext(http.MethodPost, "/api/v1/meals", `{"source":"fax"}`, uuid.New())

	require.NoError(t, h.LogMeal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	mealUC.AssertNotCalled(t, "LogMeal", mock.Anything, mock.Anything, mock.Anything)
}

func TestMealHandler_LogMeal_EmptyNutrition(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Config: testConfig(), Logger: testLogger()})

	userID := uuid.New()
	c, rec := newContext(http.MethodPost, "/api/v1/meals", `{"name":"Water"}`, userID)

	mealUC.EXPECT().LogMeal(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrEmptyNutrition)

	require.NoError(t, h.LogMeal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_NUTRITION", decode(t, rec).Error.Code)
}

func TestMealHandler_Unauthenticated(t *testing.T) {
	h := NewMealHandler(MealHandlerParams{MealUC: mockUsecase.NewMockMealUsecase(t), Config: testConfig(), Logger: testLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/meals", "", uuid.Nil)

	require.NoError(t, h.ListMeals(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMealHandler_ListMeals_ParsesDate(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Config: testConfig(), Logger: testLogger()})

	userID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/meals?date=2024-05-01", "", userID)

	mealUC.EXPECT().
		ListMealsForDay(mock.Anything, userID, mock.MatchedBy(func(day time.Time) bool {
			return day.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return([]*entity.MealRecord{}, nil)

	require.NoError(t, h.ListMeals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMealHandler_ListMeals_InvalidDate(t *testing.T) {
	h := NewMealHandler(MealHandlerParams{MealUC: mockUsecase.NewMockMealUsecase(t), Config: testConfig(), Logger: testLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/meals?date=May-1", "", uuid.New())

	require.NoError(t, h.ListMeals(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DATE", decode(t, rec).Error.Code)
}

func TestMealHandler_DeleteMeal_NotFound(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Config: testConfig(), Logger: testLogger()})

	userID := uuid.New()
	mealID := uuid.New()
	c, rec := newContext(http.MethodDelete, "/api/v1/meals/"+mealID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(mealID.String())

	mealUC.EXPECT().DeleteMeal(mock.Anything, userID, mealID).
		Return(errors.Wrap(domainerrors.ErrMealNotFound, "meal not found"))

	require.NoError(t, h.DeleteMeal(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MEAL_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestMealHandler_CorrectMeal_InvalidID(t *testing.T) {
	h := NewMealHandler(MealHandlerParams{MealUC: mockUsecase.NewMockMealUsecase(t), Config: testConfig(), Logger: testLogger()})

	c, rec := newContext(http.MethodPatch, "/api/v1/meals/abc", `{"calories":1}`, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.CorrectMeal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoalHandler_Today(t *testing.T) {
	nutritionUC := mockUsecase.NewMockNutritionUsecase(t)
	h := NewGoalHandler(GoalHandlerParams{NutritionUC: nutritionUC, ProfileUC: mockUsecase.NewMockProfileUsecase(t), Logger: testLogger()})
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	userID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/goals/today", "", userID)

	eval := goal.Evaluate(
		entity.Nutrients{Calories: 2000, Protein: 50, Carbs: 250, Fat: 50},
		entity.Nutrients{Calories: 2000, Protein: 100, Carbs: 250, Fat: 70},
	)
	nutritionUC.EXPECT().EvaluateToday(mock.Anything, userID, now).Return(&eval, nil)

	require.NoError(t, h.Today(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You've reached your Calories, Carbs goal(s)! Keep going!")
	assert.Contains(t, rec.Body.String(), `"remaining":{"calories":0,"protein":50,"carbs":0,"fat":20}`)
}

func TestGoalHandler_Totals(t *testing.T) {
	nutritionUC := mockUsecase.NewMockNutritionUsecase(t)
	h := NewGoalHandler(GoalHandlerParams{NutritionUC: nutritionUC, ProfileUC: mockUsecase.NewMockProfileUsecase(t), Logger: testLogger()})

	userID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/goals/totals?from=2024-04-01T00:00:00Z&to=2024-05-01T00:00:00Z", "", userID)

	nutritionUC.EXPECT().
		Totals(mock.Anything, userID, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).
		Return(entity.Nutrients{Calories: 1234}, nil)

	require.NoError(t, h.Totals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"calories":1234`)
}

func TestGoalHandler_Totals_BadTimestamp(t *testing.T) {
	h := NewGoalHandler(GoalHandlerParams{
		NutritionUC: mockUsecase.NewMockNutritionUsecase(t),
		ProfileUC:   mockUsecase.NewMockProfileUsecase(t),
		Logger:      testLogger(),
	})

	c, rec := newContext(http.MethodGet, "/api/v1/goals/totals?from=yesterday", "", uuid.New())

	require.NoError(t, h.Totals(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoalHandler_UpdateGoals(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewGoalHandler(GoalHandlerParams{NutritionUC: mockUsecase.NewMockNutritionUsecase(t), ProfileUC: profileUC, Logger: testLogger()})

	userID := uuid.New()
	goals := entity.Nutrients{Calories: 2100, Protein: 120, Carbs: 0, Fat: 60}
	c, rec := newContext(http.MethodPut, "/api/v1/goals", `{"calories":2100,"protein":120,"fat":60}`, userID)

	profileUC.EXPECT().UpdateGoals(mock.Anything, userID, goals).Return(&entity.User{ID: userID, Goals: goals}, nil)

	require.NoError(t, h.UpdateGoals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoalHandler_UpdateGoals_Negative(t *testing.T) {
	h := NewGoalHandler(GoalHandlerParams{
		NutritionUC: mockUsecase.NewMockNutritionUsecase(t),
		ProfileUC:   mockUsecase.NewMockProfileUsecase(t),
		Logger:      testLogger(),
	})

	c, rec := newContext(http.MethodPut, "/api/v1/goals", `{"calories":-5}`, uuid.New())

	require.NoError(t, h.UpdateGoals(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
}

func TestReminderHandler_CreateReminder_InPast(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(ReminderHandlerParams{ReminderUC: reminderUC, Logger: testLogger()})

	userID := uuid.New()
	body := `{"category":"snack","message":"Fruit","scheduled_at":"2020-01-01T10:00:00Z"}`
	c, rec := newContext(http.MethodPost, "/api/v1/reminders", body, userID)

	reminderUC.EXPECT().CreateReminder(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrReminderInPast)

	require.NoError(t, h.CreateReminder(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REMINDER_IN_PAST", decode(t, rec).Error.Code)
}

func TestReminderHandler_ListReminders(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(ReminderHandlerParams{ReminderUC: reminderUC, Logger: testLogger()})

	userID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/reminders?limit=10&offset=20", "", userID)

	reminderUC.EXPECT().ListReminders(mock.Anything, userID, 10, 20).Return([]*entity.ReminderNotification{}, nil)

	require.NoError(t, h.ListReminders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_GetProfile_HidesToken(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: testLogger()})

	userID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/profile", "", userID)

	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "a@b.c", PushToken: "secret-token"}, nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"push_enabled":true`)
	assert.NotContains(t, rec.Body.String(), "secret-token")
}

func TestProfileHandler_RegisterPushToken(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: testLogger()})

	userID := uuid.New()
	c, rec := newContext(http.MethodPut, "/api/v1/profile/push-token", `{"token":"fcm-123"}`, userID)

	profileUC.EXPECT().SetPushToken(mock.Anything, userID, "fcm-123").Return(nil)

	require.NoError(t, h.RegisterPushToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
	}{
		{name: "ready", wantCode: http.StatusOK},
		{name: "database down", pingErr: errors.New("dial tcp: connection refused"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(func(context.Context) error { return tt.pingErr }, testLogger())
			c, rec := newContext(http.MethodGet, "/health/ready", "", uuid.Nil)

			require.NoError(t, h.Ready(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
