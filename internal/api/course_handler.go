package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/whitepaper-ai/course-api/internal/api/shared"
	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/service"
)

// CourseDetailResponse is a course with its modules expanded in order.
type CourseDetailResponse struct {
	domain.Course
	Modules []domain.Module `json:"module_details"`
}

// CourseListResponse wraps the demo user's finalized courses.
type CourseListResponse struct {
	Courses []*domain.Course `json:"courses"`
}

// ExportResponse acknowledges an export request.
type ExportResponse struct {
	CourseID string `json:"course_id"`
	Format   string `json:"format"`
	Message  string `json:"message"`
}

// CourseHandler handles course read and export HTTP requests
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

// ListCourses handles GET /api/courses requests
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if courses == nil {
		courses = []*domain.Course{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CourseListResponse{Courses: courses})
}

// GetCourse handles GET /api/courses/{courseID} requests, returning the
// course with its module references expanded.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	if courseID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing course ID")
		return
	}

	detail, err := h.courseService.GetCourse(r.Context(), courseID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CourseDetailResponse{
		Course:  detail.Course,
		Modules: detail.Modules,
	})
}

// ExportCourse handles GET /api/courses/{courseID}/export/{format} requests.
// Export generation itself is stubbed; the endpoint validates and acknowledges.
func (h *CourseHandler) ExportCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	format := chi.URLParam(r, "format")

	message, err := h.courseService.ExportCourse(r.Context(), courseID, format)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ExportResponse{
		CourseID: courseID,
		Format:   format,
		Message:  message,
	})
}
