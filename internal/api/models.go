package api

import (
	"github.com/phrazzld/coursebook/internal/service"
)

// Request bodies. The max tags only guard against oversized input; the
// field rules users see (minimum lengths, email format, course selection)
// are enforced by the stores so their order and messages stay the same for
// every caller.

// CourseRequest is the body of POST /api/courses and PUT /api/courses/{id}.
type CourseRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"desc"  validate:"max=2000"`
}

// EnrollmentRequest is the body of POST /api/enrollments and
// PUT /api/enrollments/{id}.
type EnrollmentRequest struct {
	CourseID     int    `json:"courseId"`
	StudentName  string `json:"name"     validate:"max=200"`
	StudentEmail string `json:"email"    validate:"max=254"`
}

// CourseListResponse is the body of GET /api/courses.
type CourseListResponse struct {
	Courses []service.CourseRow    `json:"courses"`
	Options []service.CourseOption `json:"options"`
}

// EnrollmentListResponse is the body of GET /api/enrollments.
type EnrollmentListResponse struct {
	Enrollments []service.EnrollmentRow `json:"enrollments"`
}
