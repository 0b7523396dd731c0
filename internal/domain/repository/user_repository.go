// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"nutritrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindWithPushToken returns every user that currently has a push token.
	FindWithPushToken(ctx context.Context) ([]*entity.User, error)

	// UpdateGoals overwrites the user's daily targets.
	UpdateGoals(ctx context.Context, id uuid.UUID, goals entity.Nutrients) error

	// SetPushToken stores the user's push token; an empty token clears it.
	SetPushToken(ctx context.Context, id uuid.UUID, token string) error

	// ClearPushTokenIfMatches clears the token only while it still equals token.
	ClearPushTokenIfMatches(ctx context.Context, id uuid.UUID, token string) error

	// CreateGoalHistory appends a goal change record.
	CreateGoalHistory(ctx context.Context, history *entity.GoalHistory) error

	// ListGoalHistory returns the user's goal changes, newest first.
	ListGoalHistory(ctx context.Context, id uuid.UUID, limit int) ([]*entity.GoalHistory, error)
}
