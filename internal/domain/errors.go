// Package domain defines the core business entities and errors.
package domain

import "errors"

// Error kinds. Every condition error below unwraps to exactly one of these,
// so callers can branch on the category with errors.Is.
var (
	// ErrValidation is the kind for malformed input (lengths, formats, missing fields).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is the kind for a referenced id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is the kind for an operation that would break a
	// relationship between records.
	ErrConflict = errors.New("conflict")
)

// Course conditions.
var (
	ErrCourseTitleTooShort       = newError(ErrValidation, "course title must be at least 3 characters")
	ErrCourseDescriptionTooShort = newError(ErrValidation, "course description must be at least 5 characters")
	ErrCourseNotFound            = newError(ErrNotFound, "course not found")
	ErrCourseHasEnrollments      = newError(ErrConflict, "cannot delete course: enrollments exist")
)

// Enrollment conditions.
var (
	ErrCourseNotSelected   = newError(ErrValidation, "please select a course")
	ErrStudentNameTooShort = newError(ErrValidation, "student name must be at least 3 characters")
	ErrInvalidEmail        = newError(ErrValidation, "enter a valid email address")
	ErrEnrollmentNotFound  = newError(ErrNotFound, "enrollment not found")
	ErrDuplicateEnrollment = newError(ErrConflict, "this student email is already enrolled in this course")
)

// Error is a rejected-operation condition. Its message is meant for the
// person using the tool; Unwrap exposes the kind.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the error kind to support errors.Is.
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the error kind sentinel of err, or nil when err is not one of
// the domain conditions.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
