// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dailyfresh/internal/domain/entity"
	"dailyfresh/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user record. A username collision surfaces as the
	// duplicate-username domain error regardless of whether it was detected by
	// a pre-check or by the unique constraint.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by the exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update persists changes to an existing user record.
	Update(ctx context.Context, user *entity.User) error
}
