package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 2024-05-01 18:30 UTC is 02:30 on May 2nd in Taipei.
	now := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	w := DayWindow(now, loc)

	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, loc), w.End)
	assert.Equal(t, "2024-05-02", w.Key())
	assert.True(t, w.Contains(now))
	assert.False(t, w.Contains(w.End))
}

func TestMealWindow(t *testing.T) {
	lunch := MealWindow{Category: CategoryLunch, StartHour: 12, EndHour: 17}
	now := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)

	w := lunch.On(now, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC), w.End)
	assert.True(t, lunch.ClosesAt(now, time.UTC))
	assert.False(t, lunch.ClosesAt(now.Add(-time.Hour), time.UTC))
	assert.True(t, w.Contains(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)))
	assert.False(t, w.Contains(now))
}

func TestMealLabelAt(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 5, 1, h, 0, 0, 0, time.UTC) }

	assert.Equal(t, CategoryBreakfast, MealLabelAt(at(8), time.UTC))
	assert.Equal(t, CategoryLunch, MealLabelAt(at(12), time.UTC))
	assert.Equal(t, CategoryLunch, MealLabelAt(at(16), time.UTC))
	assert.Equal(t, CategoryDinner, MealLabelAt(at(17), time.UTC))
}
