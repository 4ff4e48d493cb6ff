package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every draft type; validator caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps a failing struct field to the condition reported for it.
// Fields are checked in declaration order and only the first failure is
// reported, which fixes the order in which conditions surface.
var fieldErrors = map[string]error{
	"Title":        ErrCourseTitleTooShort,
	"Description":  ErrCourseDescriptionTooShort,
	"CourseID":     ErrCourseNotSelected,
	"StudentName":  ErrStudentNameTooShort,
	"StudentEmail": ErrInvalidEmail,
}

// CourseDraft holds user-entered course fields after whitespace trimming.
type CourseDraft struct {
	Title       string `validate:"min=3"`
	Description string `validate:"min=5"`
}

// NewCourseDraft trims the raw input. It does not validate.
func NewCourseDraft(title, description string) CourseDraft {
	return CourseDraft{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
}

// Validate reports the first field rule the draft breaks, title first.
func (d CourseDraft) Validate() error {
	return firstViolation(d)
}

// EnrollmentDraft holds user-entered enrollment fields after whitespace trimming.
type EnrollmentDraft struct {
	CourseID     int    `validate:"gt=0"`
	StudentName  string `validate:"min=3"`
	StudentEmail string `validate:"contains=@"`
}

// NewEnrollmentDraft trims the raw input. It does not validate.
func NewEnrollmentDraft(courseID int, studentName, studentEmail string) EnrollmentDraft {
	return EnrollmentDraft{
		CourseID:     courseID,
		StudentName:  strings.TrimSpace(studentName),
		StudentEmail: strings.TrimSpace(studentEmail),
	}
}

// Validate reports the first field rule the draft breaks, in the order
// course selection, name, email.
func (d EnrollmentDraft) Validate() error {
	return firstViolation(d)
}

func firstViolation(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if condition, ok := fieldErrors[verrs[0].StructField()]; ok {
			return condition
		}
	}

	return fmt.Errorf("%w: %v", ErrValidation, err)
}
