package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dailyfresh/config"
	"dailyfresh/internal/domain/service"
)

// activationCodec signs activation tokens as HS256 JWTs carrying the user id
// in a "confirm" claim and the expiry in the standard "exp" claim. The secret
// is dedicated to activation so session key rotation never invalidates
// outstanding links, and vice versa.
type activationCodec struct {
	secret string
}

// NewActivationCodec is the constructor for activationCodec.
func NewActivationCodec(cfg *config.Config) (service.ActivationTokenCodec, error) {
	if cfg.SecretKey.Activation == "" {
		return nil, errors.New("activation secret must be provided")
	}

	return &activationCodec{secret: cfg.SecretKey.Activation}, nil
}

// Issue encodes the user id into a signed token that expires ttl from now.
func (c *activationCodec) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"confirm": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign activation token")
	}

	return signed, nil
}

// Verify validates the signature and expiry of a token and returns the bound
// user id.
func (c *activationCodec) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(c.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, service.ErrActivationTokenExpired
		}

		return uuid.Nil, service.ErrActivationTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, service.ErrActivationTokenInvalid
	}

	confirm, _ := claims["confirm"].(string)
	userID, err := uuid.Parse(confirm)
	if err != nil {
		return uuid.Nil, service.ErrActivationTokenInvalid
	}

	return userID, nil
}
