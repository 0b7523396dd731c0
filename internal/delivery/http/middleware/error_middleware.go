package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"nutritrack/config"
	deliverycontext "nutritrack/internal/delivery/context"
	"nutritrack/internal/delivery/http/response"
	domainerrors "nutritrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

	case errors.As(err, &httpErr):
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, "HTTP_ERROR", message, message)

	default:
		ctx := c.Request().Context()
		deliverycontext.Logger(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
			slog.Any("error", err),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)

		// Internal error text is only exposed in debug mode.
		details := ""
		if m.debug {
			details = err.Error()
		}
		m.write(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", details)
	}
}

func (m *ErrorMiddleware) write(c echo.Context, status int, errorCode, message, details string) {
	if err := response.Error(c, status, errorCode, message, details); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
