package common

import (
	"errors"
	"net/http"
)

// Error kinds shared by repositories, services and handlers.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// AppError carries a user-facing message alongside its kind.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// Is lets errors.Is match on the kind.
func (e *AppError) Is(target error) bool {
	return e.Kind == target
}

func (e *AppError) Unwrap() error { return e.Err }

func newAppError(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Validation(message string) error   { return newAppError(ErrValidation, message) }
func Unauthorized(message string) error { return newAppError(ErrUnauthorized, message) }
func Forbidden(message string) error    { return newAppError(ErrForbidden, message) }
func NotFound(message string) error     { return newAppError(ErrNotFound, message) }
func Conflict(message string) error     { return newAppError(ErrConflict, message) }

// StatusFor maps an error to the HTTP status it should be answered with.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsUserFacing reports whether the error message may be shown to callers as is.
func IsUserFacing(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
