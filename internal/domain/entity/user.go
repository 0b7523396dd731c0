// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account together with its daily nutrient targets.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email.
	Name      string    // The user's display name.
	Goals     Nutrients // Daily targets; a zero field means no target for that nutrient.
	PushToken string    // Push destination token; empty when the user has not opted in.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// HasPushToken reports whether the user can receive push notifications.
func (u *User) HasPushToken() bool {
	return u != nil && u.PushToken != ""
}

// GoalHistory records one change of a user's daily targets.
type GoalHistory struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Goals     Nutrients
	ChangedAt time.Time
}
