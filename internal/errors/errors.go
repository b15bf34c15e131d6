package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when the normalized email is already registered.
	ErrDuplicateEmail = errors.New("that email is already registered")
	// ErrNotFound is returned when no account matches the normalized email.
	ErrNotFound = errors.New("no account found for that email")
	// ErrBadCredentials is returned when the password digest does not match the stored hash.
	ErrBadCredentials = errors.New("incorrect password")
	// ErrWeakPassword is returned when a new password is shorter than the minimum length.
	ErrWeakPassword = errors.New("password must be at least 4 characters")
	// ErrInvalidFormat is returned when a name, email or date fails its shape check.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUniquenessViolation is returned when a dorsal is already taken by another player.
	ErrUniquenessViolation = errors.New("that number is already assigned to another player")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Every taxonomy error is
// recoverable by the user; anything unrecognized is an internal failure.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrBadCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "BAD_CREDENTIALS")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrInvalidFormat):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FORMAT")
	case errors.Is(err, ErrUniquenessViolation):
		return NewHTTPError(http.StatusConflict, err.Error(), "UNIQUENESS_VIOLATION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
