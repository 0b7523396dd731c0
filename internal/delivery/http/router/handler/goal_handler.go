package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nutritrack/internal/delivery/http/response"
	"nutritrack/internal/domain/entity"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GoalHandlerParams holds dependencies for GoalHandler, injected by Fx.
type GoalHandlerParams struct {
	fx.In

	NutritionUC usecase.NutritionUsecase
	ProfileUC   usecase.ProfileUsecase
	Logger      *slog.Logger
}

// GoalHandler holds dependencies for goal tracking handlers
type GoalHandler struct {
	nutritionUC usecase.NutritionUsecase
	profileUC   usecase.ProfileUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewGoalHandler is the constructor for GoalHandler
func NewGoalHandler(params GoalHandlerParams) *GoalHandler {
	return &GoalHandler{
		nutritionUC: params.NutritionUC,
		profileUC:   params.ProfileUC,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// UpdateGoalsRequest represents the request body for replacing daily goals.
// A zero value means no target for that nutrient.
type UpdateGoalsRequest struct {
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

// TotalsResponse is the aggregate of an arbitrary range
type TotalsResponse struct {
	From   time.Time        `json:"from"`
	To     time.Time        `json:"to"`
	Totals entity.Nutrients `json:"totals"`
}

// GoalHistoryResponse is one recorded goal change
type GoalHistoryResponse struct {
	ID        uuid.UUID        `json:"id"`
	Goals     entity.Nutrients `json:"goals"`
	ChangedAt time.Time        `json:"changed_at"`
}

// Today handles the goal check for the current local day
func (h *GoalHandler) Today(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	eval, err := h.nutritionUC.EvaluateToday(c.Request().Context(), userID, h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, eval, "Goal progress retrieved successfully")
}

// Totals handles aggregating an arbitrary [from, to) range given as RFC 3339 timestamps
func (h *GoalHandler) Totals(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_RANGE", "from must be an RFC 3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_RANGE", "to must be an RFC 3339 timestamp")
	}

	totals, err := h.nutritionUC.Totals(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TotalsResponse{From: from, To: to, Totals: totals}, "Totals retrieved successfully")
}

// UpdateGoals handles replacing the user's daily goals
func (h *GoalHandler) UpdateGoals(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	var req UpdateGoalsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goals input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	goals := entity.Nutrients{Calories: req.Calories, Protein: req.Protein, Carbs: req.Carbs, Fat: req.Fat}

	user, err := h.profileUC.UpdateGoals(c.Request().Context(), userID, goals)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user.Goals, "Goals updated successfully")
}

// History handles listing previous goal changes
func (h *GoalHandler) History(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
	}

	histories, err := h.profileUC.GoalHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]GoalHistoryResponse, 0, len(histories))
	for _, history := range histories {
		resp = append(resp, GoalHistoryResponse{
			ID:        history.ID,
			Goals:     history.Goals,
			ChangedAt: history.ChangedAt,
		})
	}

	return response.Success(c, http.StatusOK, resp, "Goal history retrieved successfully")
}

// Suggest handles deriving goals from a body profile
func (h *GoalHandler) Suggest(c echo.Context) error {
	if _, ok, err := getUserID(c); !ok {
		return err
	}

	var req usecase.SuggestGoalsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid body profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	goals, err := h.profileUC.SuggestGoals(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, goals, "Goals suggested successfully")
}
