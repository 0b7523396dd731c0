package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table. Range scans go through (user_id, consumed_at).
type MealModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_meals_user_consumed,priority:1"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Source     string    `gorm:"type:varchar(20);not null"`
	ConsumedAt time.Time `gorm:"not null;index:idx_meals_user_consumed,priority:2"`
	Calories   float64   `gorm:"not null;default:0;check:calories >= 0"`
	Protein    float64   `gorm:"not null;default:0;check:protein >= 0"`
	Carbs      float64   `gorm:"not null;default:0;check:carbs >= 0"`
	Fat        float64   `gorm:"not null;default:0;check:fat >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// NutrientSumRow receives the aggregate of a SUM query over meals.
type NutrientSumRow struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
