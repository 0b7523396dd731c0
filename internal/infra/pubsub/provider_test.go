package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nutritrack/config"
	"nutritrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantType any
		wantErr  bool
	}{
		{name: "unconfigured", cfg: nil, wantType: &noopPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestEncodeDispatchEvent(t *testing.T) {
	encoded, err := encodeDispatchEvent(&service.DispatchEvent{
		RequestID:  "tick-1",
		UserID:     "user-1",
		ReminderID: "rem-1",
		Category:   "snack",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"user_id":     "user-1",
		"category":    "snack",
		"reminder_id": "rem-1",
		"request_id":  "tick-1",
	}, encoded.attributes)
	assert.Equal(t, "user-1", encoded.orderingKey)
	assert.JSONEq(t,
		`{"request_id":"tick-1","user_id":"user-1","reminder_id":"rem-1","category":"snack","sent_at":"0001-01-01T00:00:00Z"}`,
		string(encoded.data),
	)
}
