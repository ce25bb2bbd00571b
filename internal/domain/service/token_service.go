package service

import (
	"time"

	"github.com/google/uuid"
)

// Token type markers embedded in session token claims.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the validated content of a session token.
type TokenClaims struct {
	UserID uuid.UUID // Subject of the token.
	Type   string    // TokenTypeAccess or TokenTypeRefresh.
}

// TokenService defines the interface for issuing and validating the signed
// session tokens that carry the Authenticated state between requests.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// HashToken returns the SHA-256 hex digest used to store refresh tokens.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
