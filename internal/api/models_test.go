package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/coursebook/internal/api/shared"
)

func TestCourseRequest(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		valid    bool
	}{
		{
			name:     "valid course",
			jsonData: `{"title":"Go 101","desc":"Basics of Go"}`,
			valid:    true,
		},
		{
			// Minimum lengths are checked by the course store.
			name:     "short fields pass shape validation",
			jsonData: `{"title":"Go","desc":"x"}`,
			valid:    true,
		},
		{
			name:     "description too long",
			jsonData: `{"title":"Go 101","desc":"` + strings.Repeat("d", 2001) + `"}`,
			valid:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req CourseRequest
			require.NoError(t, json.Unmarshal([]byte(tc.jsonData), &req))

			err := shared.ValidateRequest(&req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEnrollmentRequest(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		expected EnrollmentRequest
		valid    bool
	}{
		{
			name:     "valid enrollment",
			jsonData: `{"courseId":3,"name":"Alice Smith","email":"alice@example.edu"}`,
			expected: EnrollmentRequest{CourseID: 3, StudentName: "Alice Smith", StudentEmail: "alice@example.edu"},
			valid:    true,
		},
		{
			// Course selection and email format are checked by the enrollment store.
			name:     "missing course passes shape validation",
			jsonData: `{"name":"Alice Smith","email":"not-an-email"}`,
			expected: EnrollmentRequest{StudentName: "Alice Smith", StudentEmail: "not-an-email"},
			valid:    true,
		},
		{
			name:     "email too long",
			jsonData: `{"courseId":1,"name":"Alice","email":"` + strings.Repeat("a", 250) + `@x.io"}`,
			valid:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req EnrollmentRequest
			require.NoError(t, json.Unmarshal([]byte(tc.jsonData), &req))

			err := shared.ValidateRequest(&req)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, req)
		})
	}
}
