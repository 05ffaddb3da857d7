package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the service layer
var (
	// ErrEmptyUpload indicates the submitted document had no content.
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrUnsupportedFormat indicates an export format outside the
	// supported set.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// Error wraps a failed service operation with context.
type Error struct {
	// Operation is the operation that failed (e.g. "create_upload")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError wraps err unless it is nil or a sentinel the caller should
// match on directly.
func wrapError(operation, message string, err error, sentinels ...error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	return &Error{Operation: operation, Message: message, Err: err}
}
