package errors

import (
	"net/http"

	"dailyfresh/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration / form validation errors
	ErrIncompleteData = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_DATA",
		"数据不完整",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"邮箱格式不正确",
		"",
	)

	ErrConsentRequired = NewBaseError(
		http.StatusBadRequest,
		"CONSENT_REQUIRED",
		"请同意协议",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USERNAME",
		"用户名已存在",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"手机格式不正确",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"输入数据验证失败",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"用户名或密码错误",
		"",
	)

	ErrInactiveAccount = NewBaseError(
		http.StatusForbidden,
		"INACTIVE_ACCOUNT",
		"账户未激活",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"无效或已过期的会话，请重新登录",
		"",
	)

	// Activation errors. Both are terminal: no resend flow exists.
	ErrActivationLinkExpired = NewBaseError(
		http.StatusGone,
		"ACTIVATION_LINK_EXPIRED",
		"激活链接已过期",
		"",
	)

	ErrActivationTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"ACTIVATION_TOKEN_INVALID",
		"激活链接无效",
		"",
	)

	// Resource errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"用户不存在",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"地址不存在",
		"",
	)

	ErrGoodsNotFound = NewBaseError(
		http.StatusNotFound,
		"GOODS_NOT_FOUND",
		"商品不存在",
		"",
	)

	ErrGoodsStockShort = NewBaseError(
		http.StatusConflict,
		"GOODS_STOCK_SHORT",
		"商品库存不足",
		"",
	)

	// Address invariant errors
	ErrDefaultAddressConflict = NewBaseError(
		http.StatusConflict,
		"DEFAULT_ADDRESS_CONFLICT",
		"该用户已设置默认地址",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"数据库事务失败",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系统内部错误",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"没有权限访问",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"资源不存在",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"资源冲突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "数据库执行失败"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
