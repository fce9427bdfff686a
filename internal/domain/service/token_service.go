package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user and roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses a token string and returns its claims when valid.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
