package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrMalformedDocument is returned when a document cannot be decoded or
	// violates the roster invariants. Check the wrapped error for details.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrIO is the category of every filesystem failure below.
	ErrIO = errors.New("i/o failure")

	// ErrReadFailed is returned when the document exists but cannot be read.
	ErrReadFailed = fmt.Errorf("%w: read failed", ErrIO)

	// ErrWriteFailed is returned when the document cannot be written or
	// moved into place.
	ErrWriteFailed = fmt.Errorf("%w: write failed", ErrIO)

	// ErrDeleteFailed is returned when an existing document cannot be removed.
	ErrDeleteFailed = fmt.Errorf("%w: delete failed", ErrIO)

	// ErrDocumentNotFound indicates that no roster document has been written yet.
	ErrDocumentNotFound = fmt.Errorf("%w: roster document", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIOError checks if the error came from the filesystem.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Operation string // The operation that failed (e.g., "load", "save")
	Path      string // Document path
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s of %s failed: %s: %v", e.Operation, e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s of %s failed: %s", e.Operation, e.Path, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given operation, path, message, and wrapped error.
func NewStoreError(operation, path, message string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}
