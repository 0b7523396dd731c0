// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"log/slog"
	"net/http"

	deliverycontext "nutritrack/internal/delivery/context"
	domainerrors "nutritrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every API response, successful or not
type Envelope struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code, e.g. "MEAL_NOT_FOUND"
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Success writes data with a user-facing message
func Success(c echo.Context, status int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(status, Envelope{
		Success: true,
		Code:    status,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. HEAD requests get the status only.
func Error(c echo.Context, status int, errorCode, message, details string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return c.JSON(status, Envelope{
		Code:    status,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode, Details: details},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError reports a body or query that could not be decoded
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// ServiceUnavailable 503 error
func ServiceUnavailable(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusServiceUnavailable, errorCode, message, "")
}

// HandleAppError writes the envelope for a usecase error. Client errors are returned as-is;
// anything else is logged and reported without details.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	isAppErr := errors.As(err, &appErr)
	if isAppErr && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	ctx := c.Request().Context()
	deliverycontext.Logger(ctx, slog.Default()).ErrorContext(ctx, "Request failed",
		slog.String("route", c.Path()),
		slog.Any("error", err),
	)

	if !isAppErr {
		appErr = domainerrors.ErrInternalError
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), "")
}
