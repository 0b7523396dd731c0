package entity

import "time"

const windowKeyLayout = "2006-01-02"

// TimeWindow is the half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Key identifies the local day the window starts on.
func (w TimeWindow) Key() string {
	return w.Start.Format(windowKeyLayout)
}

// DayWindow returns local midnight to next local midnight around t.
func DayWindow(t time.Time, loc *time.Location) TimeWindow {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	return TimeWindow{
		Start: start,
		End:   time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc),
	}
}

// MealWindow is a fixed local-time range gating recommendation pushes.
type MealWindow struct {
	Category  ReminderCategory
	StartHour int
	EndHour   int
}

// On returns the concrete window for the local day containing t.
func (w MealWindow) On(t time.Time, loc *time.Location) TimeWindow {
	local := t.In(loc)

	return TimeWindow{
		Start: time.Date(local.Year(), local.Month(), local.Day(), w.StartHour, 0, 0, 0, loc),
		End:   time.Date(local.Year(), local.Month(), local.Day(), w.EndHour, 0, 0, 0, loc),
	}
}

// ClosesAt reports whether the window's closing boundary hour is the local hour of t.
func (w MealWindow) ClosesAt(t time.Time, loc *time.Location) bool {
	return t.In(loc).Hour() == w.EndHour
}

// MealLabelAt derives the time-of-day label from the local hour of t.
func MealLabelAt(t time.Time, loc *time.Location) ReminderCategory {
	hour := t.In(loc).Hour()
	switch {
	case hour < 12:
		return CategoryBreakfast
	case hour < 17:
		return CategoryLunch
	default:
		return CategoryDinner
	}
}
