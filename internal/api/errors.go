package api

import (
	"errors"
	"net/http"

	"github.com/whitepaper-ai/course-api/internal/service"
	"github.com/whitepaper-ai/course-api/internal/status"
	"github.com/whitepaper-ai/course-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrUploadNotFound),
		errors.Is(err, store.ErrCourseNotFound),
		errors.Is(err, store.ErrModuleNotFound),
		errors.Is(err, store.ErrQuizNotFound),
		errors.Is(err, status.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrEmptyUpload),
		errors.Is(err, service.ErrUnsupportedFormat):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrUploadNotFound):
		return "Upload not found"

	case errors.Is(err, store.ErrCourseNotFound):
		return "Course not found"

	case errors.Is(err, store.ErrModuleNotFound):
		return "Module not found"

	case errors.Is(err, store.ErrQuizNotFound):
		return "No quiz found for this module"

	case errors.Is(err, status.ErrNotFound):
		return "Processing status not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, service.ErrEmptyUpload):
		return "Uploaded file is empty"

	case errors.Is(err, service.ErrUnsupportedFormat):
		return "Unsupported export format"

	default:
		return "An unexpected error occurred"
	}
}
