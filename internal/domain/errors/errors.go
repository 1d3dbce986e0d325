package errors

import (
	"net/http"

	"erpgate/internal/errors"
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

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails or WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
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

// WithMessage replaces the user-facing message, keeping code and status.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Input validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Invalid request",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Username and password required",
		"",
	)

	ErrMissingRefreshToken = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REFRESH_TOKEN",
		"Missing refresh token",
		"",
	)

	ErrInvalidDays = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DAYS",
		"Days must be an integer between 1 and 36500",
		"",
	)

	ErrMissingResourceID = NewBaseError(
		http.StatusBadRequest,
		"MISSING_RESOURCE_ID",
		"Resource id is required for this action",
		"",
	)

	ErrUnsupportedAction = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_ACTION",
		"Unsupported action",
		"",
	)

	// Authentication
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication credentials were not provided or are invalid",
		"",
	)

	ErrInvalidOrExpiredToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OR_EXPIRED_TOKEN",
		"Invalid or expired refresh token",
		"",
	)

	ErrRemoteAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"REMOTE_AUTH_FAILED",
		"Login failed",
		"",
	)

	// Authorization
	ErrForbiddenHost = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN_HOST",
		"Unauthorized host",
		"",
	)

	ErrEndpointNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ENDPOINT_NOT_ALLOWED",
		"Endpoint not allowed for this token",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Permission denied",
		"",
	)

	// Lookups
	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"Token not found",
		"",
	)

	ErrUnknownModel = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_MODEL",
		"Unknown model",
		"",
	)

	ErrLocalIdentityMissing = NewBaseError(
		http.StatusNotFound,
		"LOCAL_IDENTITY_MISSING",
		"Local user for this identity no longer exists",
		"",
	)

	ErrCredentialNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Credential not found",
		"",
	)

	ErrPrincipalNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Principal not found",
		"",
	)

	// Remote backend
	ErrRemoteCall = NewBaseError(
		http.StatusBadRequest,
		"REMOTE_ERROR",
		"Remote backend returned an error",
		"",
	)

	ErrRemoteBadResponse = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_BAD_RESPONSE",
		"Remote backend returned an unexpected response",
		"",
	)

	ErrRemoteUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REMOTE_UNAVAILABLE",
		"Remote backend is unavailable",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
