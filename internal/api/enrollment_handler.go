package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coursebook/internal/api/shared"
	"github.com/phrazzld/coursebook/internal/service"
)

// EnrollmentHandler handles enrollment-related HTTP requests
type EnrollmentHandler struct {
	executor Executor
	logger   *slog.Logger
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(executor Executor, logger *slog.Logger) *EnrollmentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EnrollmentHandler")
	}

	return &EnrollmentHandler{
		executor: executor,
		logger:   logger.With(slog.String("component", "enrollment_handler")),
	}
}

// Routes registers the enrollment endpoints on r.
func (h *EnrollmentHandler) Routes(r chi.Router) {
	r.Get("/enrollments", h.ListEnrollments)
	r.Post("/enrollments", h.CreateEnrollment)
	r.Get("/enrollments/{id}", h.GetEnrollment)
	r.Put("/enrollments/{id}", h.UpdateEnrollment)
	r.Delete("/enrollments/{id}", h.DeleteEnrollment)
}

// ListEnrollments handles GET /api/enrollments.
func (h *EnrollmentHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	res := h.executor.Execute(r.Context(), service.ListEnrollments{})

	resp := EnrollmentListResponse{Enrollments: res.Enrollments}
	if resp.Enrollments == nil {
		resp.Enrollments = []service.EnrollmentRow{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateEnrollment handles POST /api/enrollments.
func (h *EnrollmentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var req EnrollmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.executor.Execute(r.Context(), service.CreateEnrollment{
		CourseID:     req.CourseID,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
	})
	respond(w, r, http.StatusCreated, res)
}

// GetEnrollment handles GET /api/enrollments/{id}.
func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, h.executor.Execute(r.Context(), service.GetEnrollment{ID: id}))
}

// UpdateEnrollment handles PUT /api/enrollments/{id}.
func (h *EnrollmentHandler) UpdateEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req EnrollmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.executor.Execute(r.Context(), service.UpdateEnrollment{
		ID:           id,
		CourseID:     req.CourseID,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
	})
	respond(w, r, http.StatusOK, res)
}

// DeleteEnrollment handles DELETE /api/enrollments/{id}.
func (h *EnrollmentHandler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, h.executor.Execute(r.Context(), service.DeleteEnrollment{ID: id}))
}
