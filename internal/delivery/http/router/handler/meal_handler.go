package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nutritrack/config"
	"nutritrack/internal/delivery/http/response"
	"nutritrack/internal/domain/entity"
	"nutritrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealUC usecase.MealUsecase
	Config *config.Config
	Logger *slog.Logger
}

// MealHandler holds dependencies for meal logging handlers
type MealHandler struct {
	mealUC   usecase.MealUsecase
	location *time.Location
	logger   *slog.Logger
}

// NewMealHandler is the constructor for MealHandler
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{
		mealUC:   params.MealUC,
		location: params.Config.Scheduler.Location(),
		logger:   params.Logger,
	}
}

// LogMeal handles logging a meal
func (h *MealHandler) LogMeal(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	var req usecase.LogMealInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	meal, err := h.mealUC.LogMeal(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, meal, "Meal logged successfully")
}

// CorrectMeal handles correcting the nutrient values of a logged meal
func (h *MealHandler) CorrectMeal(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	mealID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var patch entity.NutrientPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nutrient input")
	}

	meal, err := h.mealUC.CorrectMeal(c.Request().Context(), userID, mealID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal corrected successfully")
}

// DeleteMeal handles deleting a logged meal
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	mealID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.mealUC.DeleteMeal(c.Request().Context(), userID, mealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMeals handles listing the meals of one local day (?date=YYYY-MM-DD, default today)
func (h *MealHandler) ListMeals(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	day := time.Now().In(h.location)
	if raw := c.QueryParam("date"); raw != "" {
		day, err = time.ParseInLocation(dateLayout, raw, h.location)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "date must be formatted as YYYY-MM-DD")
		}
	}

	meals, err := h.mealUC.ListMealsForDay(c.Request().Context(), userID, day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meals, "Meals retrieved successfully")
}
