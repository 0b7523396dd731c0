package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultSchedulerInterval     = 15 * time.Second
	defaultSchedulerTimezone     = "UTC"
	defaultSchedulerConcurrency  = 8
	defaultSchedulerCallTimeout  = 10 * time.Second
	defaultSchedulerDueBatchSize = 500
	defaultDailyGoalHour         = 23
)

// DefaultMealWindows are used when no meal windows are configured.
func DefaultMealWindows() []MealWindowConfig {
	return []MealWindowConfig{
		{Category: "breakfast", StartHour: 5, EndHour: 12},
		{Category: "lunch", StartHour: 12, EndHour: 17},
		{Category: "dinner", StartHour: 17, EndHour: 21},
	}
}

func applySchedulerDefaults(cfg *SchedulerConfig) *SchedulerConfig {
	if cfg == nil {
		cfg = &SchedulerConfig{Enabled: true}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultSchedulerInterval
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultSchedulerTimezone
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultSchedulerConcurrency
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = defaultSchedulerCallTimeout
	}
	if cfg.DueBatchSize <= 0 {
		cfg.DueBatchSize = defaultSchedulerDueBatchSize
	}
	if cfg.DailyGoalHour == nil {
		hour := defaultDailyGoalHour
		cfg.DailyGoalHour = &hour
	}
	if len(cfg.MealWindows) == 0 {
		cfg.MealWindows = DefaultMealWindows()
	}

	return cfg
}

// Validate checks the scheduler configuration for values the loop cannot run with.
func (c *SchedulerConfig) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.Wrapf(err, "invalid scheduler timezone %q", c.Timezone)
	}

	if hour := c.GoalHour(); hour < 0 || hour > 23 {
		return errors.Errorf("dailyGoalHour must be within 0-23, got %d", hour)
	}

	for _, w := range c.MealWindows {
		if w.Category == "" {
			return errors.New("meal window category is required")
		}
		if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
			return errors.Errorf("invalid meal window %s: [%d, %d)", w.Category, w.StartHour, w.EndHour)
		}
	}

	return nil
}

// GoalHour returns the local hour of the end-of-day goal pass.
func (c *SchedulerConfig) GoalHour() int {
	if c == nil || c.DailyGoalHour == nil {
		return defaultDailyGoalHour
	}

	return *c.DailyGoalHour
}

// Location returns the evaluation time zone, falling back to UTC.
func (c *SchedulerConfig) Location() *time.Location {
	if c == nil {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
