package apperror

import (
	"errors"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream rejected request")
	ErrNetwork      = errors.New("upstream unreachable")
	ErrInFlight     = errors.New("request already in flight")
)

type AppError struct {
	Err     error  // sentinel
	Message string // human-readable message
	Field   string // optional: form field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized is returned when a gated action is attempted without the matching identity.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// InFlight is returned when another request for the same form and identity is still running.
func InFlight(key string) *AppError {
	return &AppError{
		Err:     ErrInFlight,
		Message: "request already in flight: " + key,
	}
}

// Field returns the offending field of a validation error, or "".
func Field(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
