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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile and push token handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// PushTokenRequest represents the request body for registering a push token
type PushTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// ProfileResponse is the public view of a user. The push token itself is never echoed back.
type ProfileResponse struct {
	ID          uuid.UUID        `json:"id"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Goals       entity.Nutrients `json:"goals"`
	PushEnabled bool             `json:"push_enabled"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Goals:       user.Goals,
		PushEnabled: user.HasPushToken(),
		CreatedAt:   user.CreatedAt,
	}
}

// GetProfile handles retrieving the current user's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user), "Profile retrieved successfully")
}

// RegisterPushToken handles registering the device token scheduler pushes are sent to
func (h *ProfileHandler) RegisterPushToken(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	var req PushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.profileUC.SetPushToken(c.Request().Context(), userID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Push token registered successfully")
}

// ClearPushToken handles opting out of push notifications
func (h *ProfileHandler) ClearPushToken(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	if err := h.profileUC.ClearPushToken(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
