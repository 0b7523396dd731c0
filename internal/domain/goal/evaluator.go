// Package goal holds the pure rules that compare nutrient intake against daily targets.
package goal

import (
	"fmt"
	"strings"

	"nutritrack/internal/domain/entity"
)

// Status classifies how many of the configured goals were reached.
type Status string

const (
	StatusNone    Status = "none"
	StatusPartial Status = "partial"
	StatusAll     Status = "all"
)

const (
	// MessageNoneReached is the sentinel reported when no goal was reached. It is never shown to users.
	MessageNoneReached = "NO_GOALS_REACHED"
	// MessageAllReached is the message for a user who reached every goal.
	MessageAllReached = "All nutrition goals reached! Great job!"

	partialMessageFormat = "You've reached your %s goal(s)! Keep going!"
)

// Evaluation is the result of comparing totals with goals.
type Evaluation struct {
	Totals    entity.Nutrients  `json:"totals"`
	Goals     entity.Nutrients  `json:"goals"`
	Remaining entity.Nutrients  `json:"remaining"`
	Reached   []entity.Nutrient `json:"reached"`
	Status    Status            `json:"status"`
	Message   string            `json:"message"`
}

// IsReached reports whether the named nutrient goal was reached.
func (e Evaluation) IsReached(name entity.Nutrient) bool {
	for _, n := range e.Reached {
		if n == name {
			return true
		}
	}

	return false
}

// AllReached reports whether all four goals are configured and reached.
func (e Evaluation) AllReached() bool {
	return e.Status == StatusAll
}

// Evaluate compares totals against goals. A zero goal counts as unset: it is never reached
// and its remaining amount is zero.
func Evaluate(totals, goals entity.Nutrients) Evaluation {
	eval := Evaluation{
		Totals:  totals,
		Goals:   goals,
		Reached: make([]entity.Nutrient, 0, len(entity.NutrientOrder)),
	}

	for _, name := range entity.NutrientOrder {
		target := goals.Get(name)
		if target <= 0 {
			continue
		}

		total := totals.Get(name)
		if total >= target {
			eval.Reached = append(eval.Reached, name)
			continue
		}
		eval.Remaining = eval.Remaining.With(name, target-total)
	}

	eval.Status, eval.Message = classify(eval.Reached)

	return eval
}

func classify(reached []entity.Nutrient) (Status, string) {
	switch len(reached) {
	case 0:
		return StatusNone, MessageNoneReached
	case len(entity.NutrientOrder):
		return StatusAll, MessageAllReached
	}

	names := make([]string, len(reached))
	for i, n := range reached {
		names[i] = string(n)
	}

	return StatusPartial, fmt.Sprintf(partialMessageFormat, strings.Join(names, ", "))
}
