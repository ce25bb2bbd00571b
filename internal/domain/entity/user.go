// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the storefront.
// A user is created inactive by registration and becomes active exactly once,
// when the activation link from the registration email is consumed.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login name, matched case-sensitively.
	Email        string    // Contact address the activation email is sent to.
	PasswordHash string    // bcrypt hash of the password; the plaintext is never stored.
	IsActive     bool      // False until the activation token is consumed.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token expires and becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}
