package repository

import (
	"context"
	"errors"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrChatNotFound is returned when a chat does not exist or belongs to another user.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository defines the persistence operations for assistant chats.
type ChatRepository interface {
	// Create persists an empty chat.
	Create(ctx context.Context, chat *entity.Chat) error

	// FindByID retrieves a chat owned by userID together with its messages in send order.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Chat, error)

	// ListRecent returns the user's newest chats with their messages.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Chat, error)

	// DeleteOldest removes the user's oldest chats until at most keep remain.
	DeleteOldest(ctx context.Context, userID uuid.UUID, keep int) error

	// AppendMessages stores messages and bumps the chat's updated_at atomically.
	AppendMessages(ctx context.Context, chatID uuid.UUID, messages []*entity.ChatMessage) error
}
