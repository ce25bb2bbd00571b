// Package response contains shared helpers for rendering the unified HTTP
// response envelope.
package response

import (
	"net/http"

	domainerrors "dailyfresh/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// FormError renders an application error together with the submitted form
// context, so the client can re-render the form without losing input.
// Secret fields must be stripped by the caller before it lands here.
func FormError(c echo.Context, appErr domainerrors.AppError, form any) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Data:    form,
		Error: &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}
