package apperrors

import "errors"

// Resource errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrInvalidID = errors.New("invalid id")
)

// Write-time constraint errors
var (
	ErrDuplicateAPCode  = errors.New("academic partner with this AP code already exists")
	ErrAdminExists      = errors.New("admin already exists")
	ErrValidationFailed = errors.New("validation failed")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("no token provided")
)

// File handling errors
var (
	ErrFileTooLarge       = errors.New("file exceeds the allowed size")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

// ErrNotificationFailed marks a downstream send failure after the document
// was already persisted. Callers must not treat it as a persistence error.
var ErrNotificationFailed = errors.New("notification failed")

// CustomError carries a user-facing message on top of a sentinel error so
// handlers can match with errors.Is while clients see a specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel for errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps ErrValidationFailed with a field-level message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError wraps ErrNotFound with an entity-specific message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewFileError wraps a file sentinel with the offending filename.
func NewFileError(sentinel error, message string) error {
	return &CustomError{Err: sentinel, Message: message}
}
