// Package handler contains the HTTP handlers for the storefront.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dailyfresh/internal/delivery/http/response"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const rememberCookieName = "username"

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Allow    bool   `json:"allow"`
}

// registerForm is the non-secret form context echoed on validation errors.
type registerForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Allow    bool   `json:"allow"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Allow:    req.Allow,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.FormError(c, appErr, registerForm{
				Username: req.Username,
				Email:    req.Email,
				Allow:    req.Allow,
			})
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "User registered successfully")
}

// Activate consumes an activation link.
func (h *UserHandler) Activate(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Activation token is missing")
	}

	if err := h.uc.Activate(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account activated successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
	Next     string `json:"next"`
}

type loginForm struct {
	Username string `json:"username"`
	Next     string `json:"next,omitempty"`
}

type loginView struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *UserView `json:"user"`
	Next         string    `json:"next,omitempty"`
}

// Login handles the user login request. The next query param survives the
// login round-trip in the response payload, and the remember flag drives the
// 7-day username cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.Next == "" {
		req.Next = c.QueryParam("next")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.FormError(c, appErr, loginForm{
				Username: req.Username,
				Next:     req.Next,
			})
		}

		return errors.WithStack(err)
	}

	h.setRememberCookie(c, req.Remember, req.Username)

	return response.Success(c, http.StatusOK, loginView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserView(output.User),
		Next:         req.Next,
	}, "Login successful")
}

func (h *UserHandler) setRememberCookie(c echo.Context, remember bool, username string) {
	cookie := &http.Cookie{
		Name:     rememberCookieName,
		Path:     "/",
		HttpOnly: true,
	}
	if remember {
		cookie.Value = username
		cookie.Expires = time.Now().Add(7 * 24 * time.Hour)
		cookie.MaxAge = int((7 * 24 * time.Hour).Seconds())
	} else {
		cookie.Value = ""
		cookie.MaxAge = -1
	}

	c.SetCookie(cookie)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type refreshView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, refreshView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// LogoutAll revokes every open session of the current user, e.g. after a
// credential leak. The access token that authenticated this request keeps
// working until it expires.
func (h *UserHandler) LogoutAll(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.LogoutAll(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All sessions closed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
