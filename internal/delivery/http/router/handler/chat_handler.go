package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nutritrack/internal/delivery/http/response"
	"nutritrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves the AI nutrition chat
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// ListChats handles listing the user's most recent chats
func (h *ChatHandler) ListChats(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	chats, err := h.chatUC.ListChats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chats, "Chats retrieved successfully")
}

// CreateChat handles opening an empty chat
func (h *ChatHandler) CreateChat(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	chat, err := h.chatUC.CreateChat(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, chat, "Chat created successfully")
}

// SendMessage handles posting a message and returns the chat with the assistant's reply
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok, err := getUserID(c)
	if !ok {
		return err
	}

	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	chat, err := h.chatUC.SendMessage(c.Request().Context(), userID, &req, time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chat, "Message sent successfully")
}
