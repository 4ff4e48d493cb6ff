package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/coursebook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "course not found",
			err:      domain.ErrCourseNotFound,
			expected: true,
		},
		{
			name:     "wrapped enrollment not found",
			err:      fmt.Errorf("delete: %w", domain.ErrEnrollmentNotFound),
			expected: true,
		},
		{
			name:     "conflict",
			err:      domain.ErrCourseHasEnrollments,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsConflictError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "course has enrollments",
			err:      domain.ErrCourseHasEnrollments,
			expected: true,
		},
		{
			name:     "wrapped conflict",
			err:      fmt.Errorf("delete course 3: %w", domain.ErrCourseHasEnrollments),
			expected: true,
		},
		{
			name:     "not found",
			err:      domain.ErrCourseNotFound,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsConflictError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("message without wrapped error", func(t *testing.T) {
		err := NewStoreError("course", "create", "failed to save snapshot", nil)
		assert.Equal(t, "create operation on course failed: failed to save snapshot", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("message with wrapped error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewStoreError("enrollment", "delete", "failed to save snapshot", cause)
		assert.Equal(t,
			"delete operation on enrollment failed: failed to save snapshot: disk full",
			err.Error())
	})

	t.Run("errors.Is reaches the cause", func(t *testing.T) {
		cause := fmt.Errorf("%w: courses: bad json", ErrSnapshotUnreadable)
		err := fmt.Errorf("open catalog: %w", NewStoreError("course", "load", "failed to load snapshot", cause))
		assert.ErrorIs(t, err, ErrSnapshotUnreadable)
	})

	t.Run("errors.As extracts the store error", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", NewStoreError("course", "update", "failed to save snapshot", errors.New("x")))

		var storeErr *StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "course", storeErr.Entity)
		assert.Equal(t, "update", storeErr.Operation)
	})

	t.Run("store errors are not domain errors", func(t *testing.T) {
		err := NewStoreError("course", "update", "failed to save snapshot", errors.New("x"))
		assert.False(t, IsNotFoundError(err))
		assert.False(t, IsConflictError(err))
		assert.Nil(t, domain.Kind(err))
	})
}
