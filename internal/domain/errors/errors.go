// Package errors holds the failures the API reports to clients, each bound to a status and a stable code.
package errors

import (
	"net/http"

	"nutritrack/internal/errors"
)

// AppError is an error that knows how it should be rendered to an API client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is an immutable AppError; WithDetails returns a copy.
type BaseError struct {
	status  int
	code    string
	message string
	details string
}

func define(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns e carrying details, e.g. the failing validation field.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WrapMessage annotates e with context while keeping it matchable by errors.Is and errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	ErrUserNotFound = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")

	ErrMealNotFound       = define(http.StatusNotFound, "MEAL_NOT_FOUND", "Meal not found")
	ErrEmptyNutrition     = define(http.StatusBadRequest, "EMPTY_NUTRITION", "At least one nutrition detail (calories, protein, carbs, or fat) must be provided")
	ErrNegativeNutrition  = define(http.StatusBadRequest, "NEGATIVE_NUTRITION", "Nutrition values must not be negative")
	ErrMealCreationFailed = define(http.StatusInternalServerError, "MEAL_CREATION_FAILED", "Failed to log meal")

	ErrReminderNotFound        = define(http.StatusNotFound, "REMINDER_NOT_FOUND", "Reminder not found")
	ErrReminderInPast          = define(http.StatusBadRequest, "REMINDER_IN_PAST", "Reminder time must be in the future")
	ErrInvalidReminderCategory = define(http.StatusBadRequest, "INVALID_REMINDER_CATEGORY", "Invalid reminder category")
	ErrReminderCreationFailed  = define(http.StatusInternalServerError, "REMINDER_CREATION_FAILED", "Failed to create reminder")

	ErrChatNotFound = define(http.StatusNotFound, "CHAT_NOT_FOUND", "Chat not found")

	ErrInvalidGoals = define(http.StatusBadRequest, "INVALID_GOALS", "Goals must not be negative")
	ErrInvalidRange = define(http.StatusBadRequest, "INVALID_RANGE", "The range end must be after its start")

	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInternalError    = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError is an unexpected storage failure. The driver error stays reachable through Unwrap
// but is never shown to clients.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
