package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates the bearer tokens presented to the API.
// Issuance belongs to the identity provider; GenerateAccessToken exists for tooling and tests.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for userID.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
