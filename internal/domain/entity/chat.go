package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxChatsPerUser is how many conversations a user keeps; creating another evicts the oldest.
const MaxChatsPerUser = 5

// ChatSender identifies who wrote a chat message.
type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderAI   ChatSender = "ai"
)

// Chat is a conversation between a user and the nutrition assistant.
type Chat struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Messages  []*ChatMessage `json:"messages"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ChatMessage is one turn of a chat, kept in send order.
type ChatMessage struct {
	ID     uuid.UUID  `json:"id"`
	ChatID uuid.UUID  `json:"chat_id"`
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
	SentAt time.Time  `json:"sent_at"`
}
