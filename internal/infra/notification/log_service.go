package notification

import (
	"context"
	"log/slog"

	"nutritrack/internal/domain/service"
)

// logService stands in for the push gateway in environments without Firebase credentials.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a NotificationService that only logs outgoing pushes.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[LogPush] Notification not delivered, no push gateway configured",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("token_len", len(token)),
		slog.Any("data", data),
	)

	return nil
}
