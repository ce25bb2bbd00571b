// Package middleware contains echo middleware specific to the storefront
// HTTP delivery.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "dailyfresh/internal/delivery/context"
	"dailyfresh/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the user id on
// both the echo context and the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing or malformed"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		setUser(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate resolves the visitor's identity when a valid Bearer
// token is present and lets the request through as anonymous otherwise. Pages
// like the index and the product detail serve both kinds of visitor.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.tokenSvc.ValidateAccessToken(tokenString); err == nil {
				setUser(c, claims)
			}
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

func setUser(c echo.Context, claims *service.TokenClaims) {
	c.Set("userID", claims.UserID)

	ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
	c.SetRequest(c.Request().WithContext(ctx))
}
