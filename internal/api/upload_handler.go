package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/whitepaper-ai/course-api/internal/api/shared"
	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/service"
	"github.com/whitepaper-ai/course-api/internal/status"
)

// maxUploadBytes caps the accepted document size at 20 MiB.
const maxUploadBytes = 20 << 20

// UploadResponse represents the response data for an accepted upload
type UploadResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	PageCount  int       `json:"page_count,omitempty"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TriggerResponse acknowledges a design trigger; generation continues in
// the background.
type TriggerResponse struct {
	UploadID string `json:"upload_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// ProcessingStatusResponse represents the tracked state of a generation job
type ProcessingStatusResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Message  string `json:"message"`
	CourseID string `json:"course_id,omitempty"`
}

// UploadHandler handles upload-related HTTP requests
type UploadHandler struct {
	uploadService service.UploadService
	tracker       *status.Tracker
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService service.UploadService, tracker *status.Tracker) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		tracker:       tracker,
	}
}

// CreateUpload handles POST /api/uploads requests. The document arrives as
// a multipart form with a "file" part and an optional "title" field.
func (h *UploadHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to read uploaded file", err)
		return
	}

	title := r.FormValue("title")

	upload, err := h.uploadService.CreateUpload(r.Context(), header.Filename, title, content)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, uploadToResponse(upload))
}

// TriggerDesign handles POST /api/uploads/{id}/design requests. It returns
// as soon as the generation job is scheduled.
func (h *UploadHandler) TriggerDesign(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "id")
	if uploadID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing upload ID")
		return
	}

	if err := h.uploadService.TriggerDesign(r.Context(), uploadID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	slog.Info("design triggered", "upload_id", uploadID)

	shared.RespondWithJSON(w, r, http.StatusAccepted, TriggerResponse{
		UploadID: uploadID,
		Status:   string(domain.StateProcessing),
		Message:  "Starting AI analysis...",
	})
}

// GetProcessingStatus handles GET /api/processing/{id} requests. Clients
// poll this until the status reaches a terminal state.
func (h *UploadHandler) GetProcessingStatus(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "id")
	if uploadID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing upload ID")
		return
	}

	st, err := h.tracker.Get(uploadID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProcessingStatusResponse{
		ID:       st.ID,
		Status:   string(st.State),
		Progress: st.Progress,
		Message:  st.Message,
		CourseID: st.CourseID,
	})
}

// uploadToResponse converts a domain.Upload to an UploadResponse
func uploadToResponse(upload *domain.Upload) UploadResponse {
	return UploadResponse{
		ID:         upload.ID,
		Filename:   upload.Filename,
		Title:      upload.Title,
		Type:       upload.Type,
		PageCount:  upload.PageCount,
		Status:     upload.Status,
		UploadedAt: upload.UploadedAt,
	}
}
