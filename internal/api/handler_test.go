package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coursebook/internal/api/middleware"
	"github.com/phrazzld/coursebook/internal/api/shared"
	"github.com/phrazzld/coursebook/internal/events"
	"github.com/phrazzld/coursebook/internal/service"
	"github.com/phrazzld/coursebook/internal/store"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires the handlers to a dispatcher over an in-memory gateway.
func newTestRouter(t *testing.T, gw store.Gateway) http.Handler {
	t.Helper()

	catalog, err := store.Open(context.Background(), gw, store.WithLogger(discardLogger()))
	require.NoError(t, err)

	dispatcher, err := service.NewDispatcher(catalog, events.NewInMemoryEventEmitter(discardLogger()), discardLogger())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(discardLogger()))
	r.Route("/api", func(r chi.Router) {
		NewCourseHandler(dispatcher, discardLogger()).Routes(r)
		NewEnrollmentHandler(dispatcher, discardLogger()).Routes(r)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	resp := decodeBody[shared.ErrorResponse](t, rr)
	require.NotEmpty(t, resp.TraceID, "error responses carry a trace id")
	return resp
}

func createCourse(t *testing.T, h http.Handler, title, desc string) service.Result {
	t.Helper()
	rr := doRequest(t, h, http.MethodPost, "/api/courses", CourseRequest{Title: title, Description: desc})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[service.Result](t, rr)
}

func createEnrollment(t *testing.T, h http.Handler, courseID int, name, email string) service.Result {
	t.Helper()
	rr := doRequest(t, h, http.MethodPost, "/api/enrollments", EnrollmentRequest{
		CourseID:     courseID,
		StudentName:  name,
		StudentEmail: email,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[service.Result](t, rr)
}
