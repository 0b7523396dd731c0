package handler

import (
	"log/slog"
	"net/http"

	"nutritrack/internal/delivery/http/response"
	"nutritrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler holds dependencies for user reminder handlers
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// CreateReminder handles scheduling a reminder
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	var req usecase.CreateReminderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reminder, err := h.reminderUC.CreateReminder(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder created successfully")
}

// ListReminders handles listing the user's reminders (?limit=&offset=)
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.BadRequest(c, "INVALID_OFFSET", "offset must be an integer")
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders, "Reminders retrieved successfully")
}

// DeleteReminder handles deleting a reminder
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	reminderID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.reminderUC.DeleteReminder(c.Request().Context(), userID, reminderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
