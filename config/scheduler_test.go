package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySchedulerDefaults_NilConfig(t *testing.T) {
	cfg := applySchedulerDefaults(nil)

	require.NotNil(t, cfg)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Interval)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 23, cfg.GoalHour())
	assert.Equal(t, DefaultMealWindows(), cfg.MealWindows)
	require.NoError(t, cfg.Validate())
}

func TestApplySchedulerDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := applySchedulerDefaults(&SchedulerConfig{
		Interval:    time.Minute,
		Timezone:    "Asia/Jerusalem",
		Concurrency: 2,
		MealWindows: []MealWindowConfig{{Category: "lunch", StartHour: 11, EndHour: 15}},
	})

	assert.Equal(t, time.Minute, cfg.Interval)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Len(t, cfg.MealWindows, 1)
	assert.Equal(t, "Asia/Jerusalem", cfg.Location().String())
}

func TestApplySchedulerDefaults_KeepsMidnightGoalHour(t *testing.T) {
	midnight := 0
	cfg := applySchedulerDefaults(&SchedulerConfig{DailyGoalHour: &midnight})

	assert.Equal(t, 0, cfg.GoalHour())
	require.NoError(t, cfg.Validate())
}

func TestSchedulerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SchedulerConfig)
		wantErr string
	}{
		{
			name:    "unknown timezone",
			mutate:  func(c *SchedulerConfig) { c.Timezone = "Mars/Olympus" },
			wantErr: "invalid scheduler timezone",
		},
		{
			name:    "daily goal hour out of range",
			mutate:  func(c *SchedulerConfig) { hour := 24; c.DailyGoalHour = &hour },
			wantErr: "dailyGoalHour",
		},
		{
			name: "inverted meal window",
			mutate: func(c *SchedulerConfig) {
				c.MealWindows = []MealWindowConfig{{Category: "lunch", StartHour: 17, EndHour: 12}}
			},
			wantErr: "invalid meal window lunch",
		},
		{
			name: "missing category",
			mutate: func(c *SchedulerConfig) {
				c.MealWindows = []MealWindowConfig{{StartHour: 1, EndHour: 2}}
			},
			wantErr: "category is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := applySchedulerDefaults(nil)
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchedulerConfig_LocationFallsBackToUTC(t *testing.T) {
	var nilCfg *SchedulerConfig
	assert.Equal(t, time.UTC, nilCfg.Location())
	assert.Equal(t, time.UTC, (&SchedulerConfig{Timezone: "nope/nope"}).Location())
}
