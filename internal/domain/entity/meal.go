package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealSource records how a meal was logged.
type MealSource string

const (
	MealSourceScan    MealSource = "scan"
	MealSourceBarcode MealSource = "barcode"
	MealSourceSearch  MealSource = "search"
	MealSourceManual  MealSource = "manual"
)

// IsValid reports whether s is a known meal source.
func (s MealSource) IsValid() bool {
	switch s {
	case MealSourceScan, MealSourceBarcode, MealSourceSearch, MealSourceManual:
		return true
	default:
		return false
	}
}

// MealRecord is a single logged meal with its nutrient snapshot.
type MealRecord struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the meal.
	UserID     uuid.UUID  `json:"user_id"`     // The ID of the user who logged the meal.
	Name       string     `json:"name"`        // Display name of the meal.
	Source     MealSource `json:"source"`      // How the meal was logged.
	ConsumedAt time.Time  `json:"consumed_at"` // When the meal was eaten (date and time).
	Nutrients  Nutrients  `json:"nutrients"`   // Nutrient snapshot at logging time.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last correction.
}

// SumNutrients adds up the nutrient snapshots of meals.
func SumNutrients(meals []*MealRecord) Nutrients {
	var total Nutrients
	for _, meal := range meals {
		if meal == nil {
			continue
		}
		total = total.Add(meal.Nutrients)
	}

	return total
}
