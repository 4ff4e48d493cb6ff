package service

import (
	"fmt"

	"github.com/phrazzld/coursebook/internal/domain"
	"github.com/phrazzld/coursebook/internal/events"
)

// Status is the category of a Result, used to pick how a message is shown.
type Status string

// Result statuses.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// UnknownCourseTitle is shown for an enrollment whose course cannot be found.
const UnknownCourseTitle = "Unknown Course"

// Result is the outcome of one command.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`

	// Err is the failure behind an error result. It is not serialized;
	// Message is the user-facing text.
	Err error `json:"-"`

	Course      *domain.Course     `json:"course,omitempty"`
	Enrollment  *domain.Enrollment `json:"enrollment,omitempty"`
	Courses     []CourseRow        `json:"courses,omitempty"`
	Options     []CourseOption     `json:"options,omitempty"`
	Enrollments []EnrollmentRow    `json:"enrollments,omitempty"`

	// Refresh lists the views to re-render, in no particular order.
	Refresh []events.View `json:"refresh,omitempty"`
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.Status != StatusError
}

// CourseRow is a course as shown in the course list.
type CourseRow struct {
	domain.Course
	Enrollments int `json:"enrollments"`
}

// EnrollmentRow is an enrollment as shown in the enrollment list.
type EnrollmentRow struct {
	domain.Enrollment
	CourseTitle string `json:"courseTitle"`
}

// CourseOption is one entry of the course picker.
type CourseOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

func courseOption(c domain.Course) CourseOption {
	return CourseOption{ID: c.ID, Label: fmt.Sprintf("%s (ID: %d)", c.Title, c.ID)}
}

// Views refreshed after each kind of mutation. Enrollment rows show course
// titles, and course rows show enrollment counts.
var (
	courseRefresh     = []events.View{events.ViewCourses, events.ViewCourseOptions, events.ViewEnrollments}
	enrollmentRefresh = []events.View{events.ViewEnrollments, events.ViewCourses}
)

func success(msg string) Result {
	return Result{Status: StatusSuccess, Message: msg}
}

func info(msg string) Result {
	return Result{Status: StatusInfo, Message: msg}
}

func failure(err error) Result {
	return Result{Status: StatusError, Message: ErrorMessage(err), Err: err}
}
