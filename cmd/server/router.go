package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/coursebook/internal/api"
	apiMiddleware "github.com/phrazzld/coursebook/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	courseHandler := api.NewCourseHandler(app.dispatcher, app.logger)
	enrollmentHandler := api.NewEnrollmentHandler(app.dispatcher, app.logger)

	r.Route("/api", func(r chi.Router) {
		courseHandler.Routes(r)
		enrollmentHandler.Routes(r)

		// Change feed for connected views
		r.Get("/feed", app.feedHub.ServeHTTP)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
