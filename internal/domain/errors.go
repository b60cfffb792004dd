package domain

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap one of these so callers can
// match either the category or the exact failure with errors.Is.
var (
	// ErrConfig is returned when the assignment count configuration is rejected.
	ErrConfig = errors.New("configuration rejected")

	// ErrValidation is returned when a student record fails validation.
	// This is usually wrapped with a more specific error.
	ErrValidation = errors.New("validation failed")

	// ErrIndexOutOfBounds is returned when an index does not address a student.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmptyRoster is returned when an operation needs at least one student.
	ErrEmptyRoster = errors.New("roster is empty")
)

var (
	// ErrBelowMinimum is returned when the assignment count is below MinAssignmentCount.
	ErrBelowMinimum = fmt.Errorf("%w: assignment count below minimum", ErrConfig)

	// ErrScoreCountMismatch is returned when a student's score count differs
	// from the configured assignment count.
	ErrScoreCountMismatch = fmt.Errorf("%w: score count mismatch", ErrValidation)

	// ErrScoreOutOfRange is returned when a score falls outside [MinScore, MaxScore].
	ErrScoreOutOfRange = fmt.Errorf("%w: score out of range", ErrValidation)

	// ErrNotConfigured is returned when a student is added before the
	// assignment count has been configured.
	ErrNotConfigured = fmt.Errorf("%w: assignment count not configured", ErrValidation)
)

// IsValidationError reports whether err is any kind of student validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
