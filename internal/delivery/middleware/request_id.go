package middleware

import (
	"log/slog"

	deliverycontext "nutritrack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client-supplied IDs before they reach logs and dispatch events.
const maxRequestIDLength = 128

// RequestIDMiddleware scopes every request to a correlation ID and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process accepts the client's X-Request-Id when it is usable and generates one otherwise.
// The ID is echoed back so clients can quote it when reporting a failed meal log or goal check.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := deliverycontext.WithScope(
			c.Request().Context(),
			requestID,
			m.logger.With(slog.String("request_id", requestID)),
		)
		c.SetRequest(c.Request().WithContext(scoped))

		return next(c)
	}
}

func requestIDFrom(c echo.Context) string {
	if id := c.Request().Header.Get(deliverycontext.HeaderXRequestID); id != "" && len(id) <= maxRequestIDLength {
		return id
	}

	return uuid.NewString()
}
