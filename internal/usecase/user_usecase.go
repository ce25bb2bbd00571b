// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dailyfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Allow    bool // Whether the user accepted the terms of service.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
// The user starts inactive; the activation email is dispatched asynchronously.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the new token pair after a successful refresh.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an inactive user and queues the activation email.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Activate consumes an activation token and marks the bound user active.
	// Re-activating an already active user succeeds without effect.
	Activate(ctx context.Context, token string) error

	// Authenticate verifies a username/password pair without looking at the
	// active flag. Login layers the activation gate on top.
	Authenticate(ctx context.Context, input LoginInput) (*entity.User, error)

	// Login authenticates, gates on the active flag, and opens a session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a valid refresh token into a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout closes the session held by the given refresh token. Idempotent.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every open session of the user at once.
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}
