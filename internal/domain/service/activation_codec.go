package service

import (
	"time"

	"dailyfresh/internal/errors"

	"github.com/google/uuid"
)

// Terminal verification failures of an activation token. Neither leaves any
// partial trust in the token; an expired link has no refresh path.
var (
	// ErrActivationTokenExpired is returned when the embedded expiry has passed.
	ErrActivationTokenExpired = errors.New("activation token expired")
	// ErrActivationTokenInvalid is returned when the signature or shape of the
	// token does not verify.
	ErrActivationTokenInvalid = errors.New("activation token invalid")
)

// ActivationTokenCodec issues and verifies the signed, time-limited tokens
// that bind a registration email to a user id. The signing secret is injected
// configuration; rotating it invalidates all outstanding tokens, which is
// acceptable for short-lived activation links.
type ActivationTokenCodec interface {
	// Issue encodes the user id into an opaque URL-safe token that expires
	// ttl from now. It has no side effects beyond computation.
	Issue(userID uuid.UUID, ttl time.Duration) (string, error)

	// Verify validates the signature and expiry of a token and returns the
	// user id it binds. Fails with ErrActivationTokenExpired or
	// ErrActivationTokenInvalid.
	Verify(token string) (uuid.UUID, error)
}
