package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coursebook/internal/api/shared"
	"github.com/phrazzld/coursebook/internal/platform/logger"
	"github.com/phrazzld/coursebook/internal/service"
)

// CourseHandler handles course-related HTTP requests
type CourseHandler struct {
	executor Executor
	logger   *slog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(executor Executor, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CourseHandler")
	}

	return &CourseHandler{
		executor: executor,
		logger:   logger.With(slog.String("component", "course_handler")),
	}
}

// Routes registers the course endpoints on r.
func (h *CourseHandler) Routes(r chi.Router) {
	r.Get("/courses", h.ListCourses)
	r.Post("/courses", h.CreateCourse)
	r.Get("/courses/{id}", h.GetCourse)
	r.Put("/courses/{id}", h.UpdateCourse)
	r.Delete("/courses/{id}", h.DeleteCourse)
}

// ListCourses handles GET /api/courses.
// It returns the course rows and the course picker entries.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses := h.executor.Execute(r.Context(), service.ListCourses{})
	options := h.executor.Execute(r.Context(), service.ListCourseOptions{})

	resp := CourseListResponse{
		Courses: courses.Courses,
		Options: options.Options,
	}
	if resp.Courses == nil {
		resp.Courses = []service.CourseRow{}
	}
	if resp.Options == nil {
		resp.Options = []service.CourseOption{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateCourse handles POST /api/courses.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.executor.Execute(r.Context(), service.CreateCourse{
		Title:       req.Title,
		Description: req.Description,
	})
	respond(w, r, http.StatusCreated, res)
}

// GetCourse handles GET /api/courses/{id}.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, h.executor.Execute(r.Context(), service.GetCourse{ID: id}))
}

// UpdateCourse handles PUT /api/courses/{id}.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid course id", slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err)
		return
	}

	var req CourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.executor.Execute(r.Context(), service.UpdateCourse{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	respond(w, r, http.StatusOK, res)
}

// DeleteCourse handles DELETE /api/courses/{id}.
// A course with enrollments is refused with 409.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, h.executor.Execute(r.Context(), service.DeleteCourse{ID: id}))
}
