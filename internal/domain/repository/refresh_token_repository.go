package repository

import (
	"context"

	"dailyfresh/internal/domain/entity"
	"dailyfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a non-expired refresh token by its SHA-256 hash.
	// Returns ErrRefreshTokenNotFound when absent or expired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes the refresh token with the given hash.
	// Deleting an absent token is not an error; logout is idempotent.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes all refresh tokens of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
