package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/coursebook/internal/domain"
)

// ErrSnapshotUnreadable is returned when a stored collection cannot be decoded.
var ErrSnapshotUnreadable = errors.New("snapshot unreadable")

// IsNotFoundError checks if the error reports a missing course or enrollment.
func IsNotFoundError(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsConflictError checks if the error reports a rejected change that would
// break a relationship between records.
func IsConflictError(err error) bool {
	return errors.Is(err, domain.ErrConflict)
}

// StoreError is a custom error type for persistence failures with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "course", "enrollment")
	Operation string // The operation that failed (e.g., "create", "load")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
