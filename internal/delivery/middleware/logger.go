package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nutritrack/config"
	deliverycontext "nutritrack/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const healthPathPrefix = "/health"

// LoggerMiddleware writes one access log line per request: every request in debug mode, server errors always
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle runs the request and logs its outcome once the final status is known
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// The error handler writes the response, so the status below is the one the client saw.
			c.Error(err)
		}

		status := c.Response().Status
		if status >= http.StatusInternalServerError || (m.debug && !strings.HasPrefix(c.Path(), healthPathPrefix)) {
			m.logRequest(c, time.Since(start), err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	ctx := req.Context()
	deliverycontext.Logger(ctx, m.logger).LogAttrs(ctx, levelForStatus(res.Status), "HTTP request", attrs...)
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
