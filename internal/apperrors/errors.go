package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// Owner mismatches surface as this same error so existence is never leaked.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAlreadyPaid indicates a folder is no longer pending and cannot be
// transitioned again.
var ErrAlreadyPaid = errors.New("folder is not pending")

// ErrIncompleteChildren indicates a folder cannot be reconciled because one
// or more child checks are missing required data (or the folder is empty).
var ErrIncompleteChildren = errors.New("folder has incomplete child checks")

// ErrStoreUnavailable indicates an infrastructure failure talking to the
// database. Callers receive a generic failure; detail stays in the logs.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError wraps an underlying error with an HTTP-ish status code and a
// message safe to log.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewStoreUnavailableError wraps a database failure so that callers can
// detect it with errors.Is(err, ErrStoreUnavailable) while keeping the
// driver error in the chain for logging.
func NewStoreUnavailableError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: fmt.Errorf("%w: %w", ErrStoreUnavailable, err)}
}
