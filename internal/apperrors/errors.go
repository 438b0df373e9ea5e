// Package apperrors defines the error taxonomy shared by stores, services and
// HTTP handlers. Callers match on the sentinels with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a customer, segment, campaign or user is absent.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned before any mutation when input is rejected.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence wraps store write failures. Callers may retry.
	ErrPersistence = errors.New("persistence failure")
	// ErrConflict is returned when a unique value is already taken.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized is returned for bad credentials or revoked tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFound reports that the entity with the given id does not exist.
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v %w", entity, id, ErrNotFound)
}

// Validation reports a rejected input with a human readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Persistence wraps a store failure for the named operation.
func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Conflict reports a uniqueness violation.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// IsRetryable reports whether the caller may retry the failed operation.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPersistence)
}
