package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderModel mirrors the 'reminders' table.
// WindowKey is NULL for user reminders, so the unique index only constrains scheduler rows.
type ReminderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_reminders_user_category_window,priority:1;index:idx_reminders_user_scheduled,priority:1;index:idx_reminders_user_category_sent,priority:1"`
	Category    string     `gorm:"type:varchar(32);not null;uniqueIndex:uq_reminders_user_category_window,priority:2;index:idx_reminders_user_category_sent,priority:2"`
	Message     string     `gorm:"type:text;not null"`
	ScheduledAt time.Time  `gorm:"not null;index:idx_reminders_user_scheduled,priority:2;index:idx_reminders_pending,where:sent = false"`
	Sent        bool       `gorm:"not null;default:false"`
	SentAt      *time.Time `gorm:"index:idx_reminders_user_category_sent,priority:3"`
	WindowKey   *string    `gorm:"type:varchar(32);uniqueIndex:uq_reminders_user_category_window,priority:3"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
