package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "nutritrack/internal/delivery/context"
	"nutritrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 5 * time.Second
	localSubscription   = "projects/local/subscriptions/dispatch-events"
)

// localHTTPPublisher POSTs dispatch events to an endpoint in the Pub/Sub push format, for local development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// PushEnvelope is the body a Pub/Sub push subscription delivers to its endpoint
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope; Data is base64 encoded
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

// NewLocalHTTPPublisher creates a publisher pushing to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishDispatchEvent pushes one dispatch outcome; any non-2xx answer is an error
func (p *localHTTPPublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	encoded, err := encodeDispatchEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushEnvelope{
		Subscription: localSubscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(encoded.data),
			Attributes:  encoded.attributes,
			MessageID:   uuid.NewString(),
			OrderingKey: encoded.orderingKey,
			PublishTime: p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to push dispatch event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("local endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Dispatch event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("user_id", event.UserID),
		slog.String("category", event.Category),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
