package entity

import "errors"

var (
	// ErrEmptyNutrients is returned when every nutrient of a snapshot is zero.
	ErrEmptyNutrients = errors.New("at least one nutrition detail must be provided")
	// ErrNegativeNutrients is returned when a nutrient value is below zero.
	ErrNegativeNutrients = errors.New("nutrition values must not be negative")
)

// Nutrient names one of the four tracked macro quantities.
type Nutrient string

const (
	NutrientCalories Nutrient = "Calories"
	NutrientProtein  Nutrient = "Protein"
	NutrientCarbs    Nutrient = "Carbs"
	NutrientFat      Nutrient = "Fat"
)

// NutrientOrder is the fixed order used whenever nutrients are listed.
var NutrientOrder = []Nutrient{NutrientCalories, NutrientProtein, NutrientCarbs, NutrientFat}

// Nutrients is a macro snapshot: kcal for calories, grams for the rest.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the elementwise sum of n and other.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// Get returns the value of a single nutrient.
func (n Nutrients) Get(name Nutrient) float64 {
	switch name {
	case NutrientCalories:
		return n.Calories
	case NutrientProtein:
		return n.Protein
	case NutrientCarbs:
		return n.Carbs
	case NutrientFat:
		return n.Fat
	default:
		return 0
	}
}

// With returns a copy of n with one nutrient replaced.
func (n Nutrients) With(name Nutrient, value float64) Nutrients {
	switch name {
	case NutrientCalories:
		n.Calories = value
	case NutrientProtein:
		n.Protein = value
	case NutrientCarbs:
		n.Carbs = value
	case NutrientFat:
		n.Fat = value
	}

	return n
}

// IsZero reports whether every nutrient is zero.
func (n Nutrients) IsZero() bool {
	return n.Calories == 0 && n.Protein == 0 && n.Carbs == 0 && n.Fat == 0
}

// HasNegative reports whether any nutrient is below zero.
func (n Nutrients) HasNegative() bool {
	return n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0
}

// Validate enforces the meal snapshot invariant: non-negative with at least one non-zero field.
func (n Nutrients) Validate() error {
	if n.HasNegative() {
		return ErrNegativeNutrients
	}
	if n.IsZero() {
		return ErrEmptyNutrients
	}

	return nil
}

// NutrientPatch carries optional nutrient values; nil fields are absent.
type NutrientPatch struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// ApplyTo overlays the present fields of p onto base.
func (p NutrientPatch) ApplyTo(base Nutrients) Nutrients {
	if p.Calories != nil {
		base.Calories = *p.Calories
	}
	if p.Protein != nil {
		base.Protein = *p.Protein
	}
	if p.Carbs != nil {
		base.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		base.Fat = *p.Fat
	}

	return base
}

// Nutrients resolves the patch against a zero snapshot, so absent fields default to zero.
func (p NutrientPatch) Nutrients() Nutrients {
	return p.ApplyTo(Nutrients{})
}
