package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: nutritrack
scheduler:
  enabled: true
  interval: 15s
  callTimeout: 10s
  timezone: Asia/Taipei
gemini:
  apiKey: ""
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(testYAML), 0o600))

	t.Chdir(dir)
	t.Setenv("SCHEDULER_CALLTIMEOUT", "3s")
	t.Setenv("GEMINI_APIKEY", "secret")

	cfg, err := LoadWithEnv[Config]("config", "config")
	require.NoError(t, err)

	assert.Equal(t, "nutritrack", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Scheduler)
	assert.Equal(t, 15*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, 3*time.Second, cfg.Scheduler.CallTimeout)
	assert.Equal(t, "Asia/Taipei", cfg.Scheduler.Timezone)
	require.NotNil(t, cfg.Gemini)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
}

func TestLoadWithEnv_MidnightGoalHour(t *testing.T) {
	dir := t.TempDir()
	yaml := "scheduler:\n  timezone: UTC\n  dailyGoalHour: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Scheduler.DailyGoalHour)

	scheduler := applySchedulerDefaults(cfg.Scheduler)
	assert.Equal(t, 0, scheduler.GoalHour())
}

func TestLoadWithEnv_GoalHourUnset(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte(testYAML), 0o600))

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	assert.Nil(t, cfg.Scheduler.DailyGoalHour)

	assert.Equal(t, 23, applySchedulerDefaults(cfg.Scheduler).GoalHour())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config", "config")
	assert.Error(t, err)
}
