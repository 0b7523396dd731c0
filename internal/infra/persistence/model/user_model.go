package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	GoalCalories float64   `gorm:"not null;default:0;check:goal_calories >= 0"`
	GoalProtein  float64   `gorm:"not null;default:0;check:goal_protein >= 0"`
	GoalCarbs    float64   `gorm:"not null;default:0;check:goal_carbs >= 0"`
	GoalFat      float64   `gorm:"not null;default:0;check:goal_fat >= 0"`
	PushToken    *string   `gorm:"type:varchar(255);index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	GoalHistories []GoalHistoryModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// GoalHistoryModel mirrors the 'goal_histories' table, one row per goal change.
type GoalHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_goal_histories_user_changed,priority:1"`
	Calories  float64   `gorm:"not null;default:0"`
	Protein   float64   `gorm:"not null;default:0"`
	Carbs     float64   `gorm:"not null;default:0"`
	Fat       float64   `gorm:"not null;default:0"`
	ChangedAt time.Time `gorm:"not null;index:idx_goal_histories_user_changed,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (GoalHistoryModel) TableName() string {
	return "goal_histories"
}
