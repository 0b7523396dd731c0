package goal

import (
	"math"

	"nutritrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel scales the basal metabolic rate.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

const (
	calorieAdjustment = 300
	kcalPerGramCarbs  = 4
	kcalPerGramProt   = 4
	kcalPerGramFat    = 9
)

// ErrInvalidBodyProfile is returned when a body profile cannot produce a suggestion.
var ErrInvalidBodyProfile = errors.New("invalid body profile")

// BodyProfile is the input to goal suggestion.
type BodyProfile struct {
	Sex          Sex
	Age          int
	HeightCM     float64
	WeightKG     float64
	GoalWeightKG float64
	Activity     ActivityLevel
}

type macroRatio struct {
	protein, carbs, fat float64
}

// Suggest derives daily targets from a body profile: Mifflin-St Jeor BMR times the activity factor,
// shifted 300 kcal toward the goal weight, then split by a ratio that depends on the direction.
func Suggest(p BodyProfile) (entity.Nutrients, error) {
	factor, ok := activityFactors[p.Activity]
	if !ok {
		return entity.Nutrients{}, errors.Wrapf(ErrInvalidBodyProfile, "unknown activity level %q", p.Activity)
	}
	if p.Age <= 0 || p.HeightCM <= 0 || p.WeightKG <= 0 || p.GoalWeightKG <= 0 {
		return entity.Nutrients{}, errors.Wrap(ErrInvalidBodyProfile, "age, height and weights must be positive")
	}

	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Sex {
	case SexMale:
		bmr += 5
	case SexFemale:
		bmr -= 161
	default:
		return entity.Nutrients{}, errors.Wrapf(ErrInvalidBodyProfile, "unknown sex %q", p.Sex)
	}

	calories := bmr * factor
	ratio := macroRatio{protein: 0.30, carbs: 0.40, fat: 0.30}
	switch {
	case p.GoalWeightKG < p.WeightKG:
		calories -= calorieAdjustment
		ratio = macroRatio{protein: 0.40, carbs: 0.30, fat: 0.30}
	case p.GoalWeightKG > p.WeightKG:
		calories += calorieAdjustment
		ratio = macroRatio{protein: 0.35, carbs: 0.45, fat: 0.20}
	}
	calories = math.Round(calories)

	return entity.Nutrients{
		Calories: calories,
		Protein:  math.Round(calories * ratio.protein / kcalPerGramProt),
		Carbs:    math.Round(calories * ratio.carbs / kcalPerGramCarbs),
		Fat:      math.Round(calories * ratio.fat / kcalPerGramFat),
	}, nil
}
