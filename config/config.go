package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const defaultMaxRequestBodySize = "100KB"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Scheduler configuration for the reminder and recommendation loop
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Gemini configuration for meal recommendations
	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	// Redis configuration for dispatch claims
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for dispatch events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SchedulerConfig defines the reminder scheduler behaviour
type SchedulerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Polling period between ticks
	Interval time.Duration `json:"interval" yaml:"interval"`

	// IANA time zone used for "today" and meal windows
	Timezone string `json:"timezone" yaml:"timezone"`

	// Maximum number of users evaluated concurrently within a pass
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// Upper bound for every AI and push call
	CallTimeout time.Duration `json:"callTimeout" yaml:"callTimeout"`

	// Maximum due user reminders loaded per tick
	DueBatchSize int `json:"dueBatchSize" yaml:"dueBatchSize"`

	// Local hour of the end-of-day goal pass; unset means 23, 0 is midnight
	DailyGoalHour *int `json:"dailyGoalHour" yaml:"dailyGoalHour"`

	MealWindows []MealWindowConfig `json:"mealWindows" yaml:"mealWindows"`
}

// MealWindowConfig is a [StartHour, EndHour) local-time range; the recommendation pass runs at EndHour.
type MealWindowConfig struct {
	Category  string `json:"category" yaml:"category"`
	StartHour int    `json:"startHour" yaml:"startHour"`
	EndHour   int    `json:"endHour" yaml:"endHour"`
}

// GeminiConfig defines the text-generation collaborator
type GeminiConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
	Model  string `json:"model" yaml:"model"`

	// Endpoint root without the API version; empty uses the public Gemini API
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig defines the Redis connection used for dispatch claims
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TLS      bool          `json:"tls" yaml:"tls"`
	ClaimTTL time.Duration `json:"claimTtl" yaml:"claimTtl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "google" for Google Pub/Sub, "local" for HTTP push to a local endpoint, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Local endpoint receiving push-style messages (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`
}

// New loads config.yaml from the working directory or a parent config/ folder, applies environment
// overrides, fills scheduler defaults and validates the result.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Scheduler = applySchedulerDefaults(cfg.Scheduler)
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}
