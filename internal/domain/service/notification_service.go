package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken is returned when the gateway reports the destination token as invalid or unregistered.
var ErrInvalidPushToken = errors.New("push token is invalid or unregistered")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	// It returns ErrInvalidPushToken (possibly wrapped) when the token should be discarded.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
