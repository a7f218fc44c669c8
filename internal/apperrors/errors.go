package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
// Resources owned by another user are reported the same way.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates bad credentials, a bad or expired token, or a failed federated verification.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStorage indicates that a filesystem operation failed.
var ErrStorage = errors.New("storage error")

// ErrInvalidName is returned when a folder name has nothing left after sanitization.
var ErrInvalidName = fmt.Errorf("invalid name: %w", ErrValidation)

// AppError carries an HTTP status code and a client-safe message alongside
// the error kind and the underlying cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	kind    error
	Err     error `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates an AppError with an explicit status code and no kind sentinel.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

// NewBadRequestError is an alias of NewValidationFailedError used by transport code.
func NewBadRequestError(message string) *AppError {
	return NewValidationFailedError(message)
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, kind: ErrUnauthorized}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, kind: ErrDuplicate}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, kind: ErrNotFound}
}

// NewStorageError wraps a raw filesystem error. The cause is kept for logs;
// Message is what clients see.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, kind: ErrStorage, Err: err}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// StatusCode maps any error to the HTTP status family it belongs to.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
