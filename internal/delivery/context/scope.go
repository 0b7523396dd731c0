// Package context carries the correlation ID and scoped logger of one HTTP request or scheduler tick.
package context

import (
	"context"
	"log/slog"
)

// HeaderXRequestID is the header a client may use to supply its own correlation ID.
const HeaderXRequestID = "X-Request-Id"

type scopeKey struct{}

type scope struct {
	id     string
	logger *slog.Logger
}

// WithScope tags ctx with a correlation ID and the logger already annotated with it. logger may be nil.
func WithScope(ctx context.Context, id string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{id: id, logger: logger})
}

// CorrelationID returns the request or tick ID, or "" outside any scope.
func CorrelationID(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s.id
}

// Logger returns the scoped logger, or fallback when ctx carries none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}
