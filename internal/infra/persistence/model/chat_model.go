package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel mirrors the 'chats' table. Messages are removed with their chat.
type ChatModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chats_user_created,priority:1"`
	CreatedAt time.Time `gorm:"index:idx_chats_user_created,priority:2,sort:desc"`
	UpdatedAt time.Time

	Messages []ChatMessageModel `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChatID uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_chat_sent,priority:1"`
	Sender string    `gorm:"type:varchar(8);not null;check:chk_chat_messages_sender,sender IN ('user','ai')"`
	Text   string    `gorm:"type:text;not null"`
	SentAt time.Time `gorm:"not null;index:idx_chat_messages_chat_sent,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
