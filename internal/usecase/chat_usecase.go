package usecase

import (
	"context"
	"time"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the AI nutrition chat operations.
type ChatUsecase interface {
	// ListChats returns the user's newest chats, at most entity.MaxChatsPerUser.
	ListChats(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error)

	// CreateChat opens an empty chat, evicting the oldest ones beyond the per-user cap.
	CreateChat(ctx context.Context, userID uuid.UUID) (*entity.Chat, error)

	// SendMessage appends the user's text and the assistant's reply. A nil ChatID opens a new chat.
	SendMessage(ctx context.Context, userID uuid.UUID, input *SendMessageInput, now time.Time) (*entity.Chat, error)
}

// SendMessageInput is the body of a chat message request.
type SendMessageInput struct {
	ChatID *uuid.UUID `json:"chat_id,omitempty"`
	Text   string     `json:"text" validate:"required,max=2000"`
}
