package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/coursebook/internal/platform/memory"
	"github.com/phrazzld/coursebook/internal/service"
	"github.com/phrazzld/coursebook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnrollment(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.New())
	createCourse(t, h, "Go 101", "Intro to Go")

	res := createEnrollment(t, h, 1, "Alice", "a@b.com")
	assert.Equal(t, "Student enrolled successfully", res.Message)
	require.NotNil(t, res.Enrollment)
	assert.Equal(t, 1, res.Enrollment.CourseID)
}

func TestCreateEnrollment_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "no course selected",
			body:       EnrollmentRequest{StudentName: "Al", StudentEmail: "bad"},
			wantStatus: http.StatusBadRequest,
			wantError:  "please select a course",
		},
		{
			name:       "short name",
			body:       EnrollmentRequest{CourseID: 1, StudentName: "Al", StudentEmail: "bad"},
			wantStatus: http.StatusBadRequest,
			wantError:  "student name must be at least 3 characters",
		},
		{
			name:       "bad email",
			body:       EnrollmentRequest{CourseID: 1, StudentName: "Alice", StudentEmail: "alice"},
			wantStatus: http.StatusBadRequest,
			wantError:  "enter a valid email address",
		},
		{
			name:       "missing course",
			body:       EnrollmentRequest{CourseID: 42, StudentName: "Alice", StudentEmail: "a@b.com"},
			wantStatus: http.StatusNotFound,
			wantError:  "course not found",
		},
		{
			name:       "duplicate",
			body:       EnrollmentRequest{CourseID: 1, StudentName: "Alicia", StudentEmail: "a@b.com"},
			wantStatus: http.StatusConflict,
			wantError:  "this student email is already enrolled in this course",
		},
		{
			name:       "course id as string",
			body:       `{"courseId": "1", "name": "Alice", "email": "a@b.com"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request format",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newTestRouter(t, memory.New())
			createCourse(t, h, "Go 101", "Intro to Go")
			createEnrollment(t, h, 1, "Alice", "a@b.com")

			rr := doRequest(t, h, http.MethodPost, "/api/enrollments", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr).Error)
		})
	}
}

func TestListEnrollments(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.New())

	rr := doRequest(t, h, http.MethodGet, "/api/enrollments", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"enrollments":[]}`, rr.Body.String())

	createCourse(t, h, "Go 101", "Intro to Go")
	createEnrollment(t, h, 1, "Alice", "a@b.com")

	rr = doRequest(t, h, http.MethodGet, "/api/enrollments", nil)
	resp := decodeBody[EnrollmentListResponse](t, rr)
	require.Len(t, resp.Enrollments, 1)
	assert.Equal(t, "Go 101", resp.Enrollments[0].CourseTitle)
	assert.Equal(t, "a@b.com", resp.Enrollments[0].StudentEmail)
	assert.Contains(t, rr.Body.String(), `"name":"Alice"`)
}

func TestUpdateEnrollment(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.New())
	createCourse(t, h, "Go 101", "Intro to Go")
	createCourse(t, h, "Rust 101", "Intro to Rust")
	createEnrollment(t, h, 1, "Alice", "a@b.com")
	createEnrollment(t, h, 2, "Bob", "b@b.com")

	rr := doRequest(t, h, http.MethodPut, "/api/enrollments/1", EnrollmentRequest{
		CourseID: 1, StudentName: "Alice Smith", StudentEmail: "a@b.com",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Alice Smith", decodeBody[service.Result](t, rr).Enrollment.StudentName)

	rr = doRequest(t, h, http.MethodPut, "/api/enrollments/2", EnrollmentRequest{
		CourseID: 1, StudentName: "Bob", StudentEmail: "a@b.com",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doRequest(t, h, http.MethodPut, "/api/enrollments/9", EnrollmentRequest{
		CourseID: 1, StudentName: "Bob", StudentEmail: "c@b.com",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "enrollment not found", decodeError(t, rr).Error)
}

func TestGetAndDeleteEnrollment(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.New())
	createCourse(t, h, "Go 101", "Intro to Go")
	createEnrollment(t, h, 1, "Alice", "a@b.com")

	rr := doRequest(t, h, http.MethodGet, "/api/enrollments/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alice", decodeBody[service.Result](t, rr).Enrollment.StudentName)

	rr = doRequest(t, h, http.MethodDelete, "/api/enrollments/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Enrollment deleted", decodeBody[service.Result](t, rr).Message)

	rr = doRequest(t, h, http.MethodGet, "/api/enrollments/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// brokenGateway loads nothing and fails every save.
type brokenGateway struct{}

func (brokenGateway) Load(context.Context, string, any) (bool, error) { return false, nil }
func (brokenGateway) Save(context.Context, string, any) error        { return errors.New("disk full") }

var _ store.Gateway = brokenGateway{}

func TestPersistenceFailureIsInternalError(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, brokenGateway{})

	rr := doRequest(t, h, http.MethodPost, "/api/courses", CourseRequest{Title: "Go 101", Description: "Intro to Go"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "Changes could not be saved. Please try again.", resp.Error)
	assert.NotContains(t, rr.Body.String(), "disk full")
}
