package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailyfresh/internal/delivery/http/validator"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	mocksusecase "dailyfresh/internal/mocks/usecase"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mocksusecase.MockUserUsecase) {
	uc := mocksusecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(uc, logger), uc
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	h, uc := newTestUserHandler(t)

	user := &entity.User{
		ID:       uuid.New(),
		Username: "zhangsan",
		Email:    "zhangsan@example.com",
	}
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Username: "zhangsan",
			Password: "secret123",
			Email:    "zhangsan@example.com",
			Allow:    true,
		}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"zhangsan","password":"secret123","email":"zhangsan@example.com","allow":true}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"zhangsan"`)
	assert.Contains(t, body, `"is_active":false`)
	// The password hash never crosses the wire
	assert.NotContains(t, body, "password")
}

func TestUserHandler_Register_DuplicateUsernameEchoesForm(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(nil, domainerrors.ErrDuplicateUsername)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"zhangsan","password":"secret123","email":"zhangsan@example.com","allow":true}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, domainerrors.ErrDuplicateUsername.HTTPCode(), rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	// The submitted form context comes back so the client can re-render it
	assert.Contains(t, body, `"username":"zhangsan"`)
	assert.Contains(t, body, `"email":"zhangsan@example.com"`)
	assert.NotContains(t, body, "secret123")
}

func TestUserHandler_Register_BindFailure(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{not-json`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Register_ValidationRejectsBeforeUsecase(t *testing.T) {
	// The usecase mock has no expectations, so any call through to it fails
	// the test.
	for name, body := range map[string]string{
		"missing email":    `{"username":"zhangsan","password":"secret123"}`,
		"malformed email":  `{"username":"zhangsan","password":"secret123","email":"not-an-email"}`,
		"missing username": `{"password":"secret123","email":"zhangsan@example.com"}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestUserHandler(t)

			c, rec := newJSONContext(http.MethodPost, "/auth/register", body)

			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}

func TestUserHandler_Login_MissingPasswordRejected(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"username":"zhangsan"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_RefreshToken_MissingTokenRejected(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{}`)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Login_RememberSetsCookie(t *testing.T) {
	h, uc := newTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Username: "zhangsan", IsActive: true}
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "zhangsan", Password: "secret123"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         user,
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login?next=/cart",
		`{"username":"zhangsan","password":"secret123","remember":true}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"access_token":"access-token"`)
	assert.Contains(t, body, `"refresh_token":"refresh-token"`)
	// The next target survives the login round-trip
	assert.Contains(t, body, `"next":"/cart"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, rememberCookieName, cookies[0].Name)
	assert.Equal(t, "zhangsan", cookies[0].Value)
	assert.Positive(t, cookies[0].MaxAge)
}

func TestUserHandler_Login_NoRememberClearsCookie(t *testing.T) {
	h, uc := newTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Username: "zhangsan", IsActive: true}
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         user,
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"username":"zhangsan","password":"secret123","remember":false}`)

	require.NoError(t, h.Login(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, rememberCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUserHandler_Login_InvalidCredentialsEchoesForm(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(http.MethodPost, "/auth/login?next=/cart",
		`{"username":"zhangsan","password":"wrong"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"username":"zhangsan"`)
	assert.Contains(t, body, `"next":"/cart"`)
	assert.NotContains(t, body, "wrong")
	assert.NotContains(t, body, "access_token")
}

func TestUserHandler_Activate_Success(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().Activate(mock.Anything, "activation-token").Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/active/activation-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("activation-token")

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUserHandler_Activate_MissingToken(t *testing.T) {
	h, _ := newTestUserHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/active/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Activate_ExpiredTokenPropagates(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().Activate(mock.Anything, "stale-token").Return(domainerrors.ErrActivationLinkExpired)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/active/stale-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("stale-token")

	// The error flows to the centralized error handler
	err := h.Activate(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrActivationLinkExpired)
}

func TestUserHandler_Logout_Success(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().Logout(mock.Anything, "refresh-token").Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", `{"refresh_token":"refresh-token"}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_LogoutAll_Success(t *testing.T) {
	h, uc := newTestUserHandler(t)
	userID := uuid.New()

	uc.EXPECT().LogoutAll(mock.Anything, userID).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/user/logout_all", "")
	c.Set("userID", userID)

	require.NoError(t, h.LogoutAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUserHandler_LogoutAll_MissingUser(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/user/logout_all", "")

	require.NoError(t, h.LogoutAll(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
