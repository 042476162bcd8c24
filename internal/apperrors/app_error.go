package apperrors

import "fmt"

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
// Repositories use it to surface store failures without losing the underlying error.
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that also matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: err}
}
