package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/whitepaper-ai/course-api/internal/api"
	apiMiddleware "github.com/whitepaper-ai/course-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	uploadHandler := api.NewUploadHandler(app.uploadService, app.tracker)
	courseHandler := api.NewCourseHandler(app.courseService)
	quizHandler := api.NewQuizHandler(app.quizService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Upload and pipeline endpoints
		r.Post("/uploads", uploadHandler.CreateUpload)
		r.Post("/uploads/{id}/design", uploadHandler.TriggerDesign)
		r.Get("/processing/{id}", uploadHandler.GetProcessingStatus)

		// Course endpoints
		r.Get("/courses", courseHandler.ListCourses)
		r.Route("/courses/{courseID}", func(r chi.Router) {
			r.Get("/", courseHandler.GetCourse)
			r.Get("/export/{format}", courseHandler.ExportCourse)

			// Per-module quiz and flashcard endpoints
			r.Route("/modules/{moduleID}", func(r chi.Router) {
				r.Post("/quiz/generate", quizHandler.GenerateQuiz)
				r.Post("/quiz/submit", quizHandler.SubmitQuiz)
				r.Post("/flashcards/generate", quizHandler.GenerateFlashcards)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
