package service

import (
	"context"
	"time"
)

// DispatchEvent describes one push notification that reached the gateway
type DispatchEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     string    `json:"user_id"`
	ReminderID string    `json:"reminder_id,omitempty"`
	Category   string    `json:"category"`
	WindowKey  string    `json:"window_key,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch outcome for downstream consumers
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
