package pubsub

import (
	"encoding/json"

	"nutritrack/internal/domain/service"

	"github.com/pkg/errors"
)

// encodedEvent is a dispatch event ready for either transport.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
	// Events of one user share an ordering key, so consumers see a user's pushes in send order.
	orderingKey string
}

func encodeDispatchEvent(event *service.DispatchEvent) (encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return encodedEvent{}, errors.Wrap(err, "failed to encode dispatch event")
	}

	attributes := map[string]string{
		"user_id":  event.UserID,
		"category": event.Category,
	}
	for key, value := range map[string]string{
		"reminder_id": event.ReminderID,
		"window_key":  event.WindowKey,
		"request_id":  event.RequestID,
	} {
		if value != "" {
			attributes[key] = value
		}
	}

	return encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: event.UserID,
	}, nil
}
