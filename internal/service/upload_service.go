package service

import (
	"context"
	"log/slog"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/extract"
	"github.com/whitepaper-ai/course-api/internal/status"
	"github.com/whitepaper-ai/course-api/internal/store"
	"github.com/whitepaper-ai/course-api/internal/task"
)

// DemoUserID scopes every record to the single hardcoded user. Real
// authentication is out of scope for now.
const DemoUserID = "demo_user"

// TaskRunner defines the interface for submitting background tasks
type TaskRunner interface {
	// Submit adds a task to the processing queue
	Submit(ctx context.Context, t task.Task) error
}

// TaskFactory creates course generation tasks for an upload ID.
type TaskFactory interface {
	// CreateTask creates a new generation task for the specified upload
	CreateTask(uploadID string) (task.Task, error)
}

// UploadService accepts raw documents and triggers the generation
// pipeline for them.
type UploadService interface {
	// CreateUpload stores a new upload record and initializes its tracked
	// status. Returns ErrEmptyUpload when content is empty.
	CreateUpload(ctx context.Context, filename, title string, content []byte) (*domain.Upload, error)

	// TriggerDesign synchronously moves the upload into the processing
	// state and schedules the background generation job, returning
	// without waiting for it. Returns store.ErrUploadNotFound for an
	// unknown id. Concurrent triggers for the same id are not
	// deduplicated; each schedules its own job.
	TriggerDesign(ctx context.Context, uploadID string) error
}

type uploadServiceImpl struct {
	courses store.CourseStore
	tracker *status.Tracker
	runner  TaskRunner
	factory TaskFactory
	logger  *slog.Logger
}

// NewUploadService creates a new UploadService.
// It returns an error if any of the required dependencies are nil.
func NewUploadService(
	courses store.CourseStore,
	tracker *status.Tracker,
	runner TaskRunner,
	factory TaskFactory,
	logger *slog.Logger,
) (UploadService, error) {
	if courses == nil {
		return nil, &Error{Operation: "create_service", Message: "course store cannot be nil"}
	}
	if tracker == nil {
		return nil, &Error{Operation: "create_service", Message: "status tracker cannot be nil"}
	}
	if runner == nil {
		return nil, &Error{Operation: "create_service", Message: "task runner cannot be nil"}
	}
	if factory == nil {
		return nil, &Error{Operation: "create_service", Message: "task factory cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &uploadServiceImpl{
		courses: courses,
		tracker: tracker,
		runner:  runner,
		factory: factory,
		logger:  logger.With("component", "upload_service"),
	}, nil
}

// CreateUpload implements UploadService.
func (s *uploadServiceImpl) CreateUpload(
	ctx context.Context,
	filename, title string,
	content []byte,
) (*domain.Upload, error) {
	if len(content) == 0 {
		return nil, ErrEmptyUpload
	}

	upload, err := domain.NewUpload(DemoUserID, filename, title)
	if err != nil {
		return nil, wrapError("create_upload", "failed to build upload record", err)
	}

	// Best-effort PDF inspection. A document that does not parse is still
	// accepted; it just carries no page count.
	if pageCount, inspectErr := extract.InspectPDF(content); inspectErr != nil {
		s.logger.Warn("uploaded document did not parse as PDF",
			"upload_id", upload.ID,
			"filename", filename,
			"error", inspectErr)
	} else {
		upload.PageCount = pageCount
	}

	if err := s.courses.InsertUpload(ctx, upload); err != nil {
		return nil, wrapError("create_upload", "failed to save upload", err)
	}

	s.tracker.Initialize(upload.ID, domain.StateUploaded, 0, "File uploaded. Ready to design course.")

	s.logger.Info("upload accepted",
		"upload_id", upload.ID,
		"filename", filename,
		"size_bytes", len(content),
		"page_count", upload.PageCount)

	return upload, nil
}

// TriggerDesign implements UploadService.
func (s *uploadServiceImpl) TriggerDesign(ctx context.Context, uploadID string) error {
	if _, err := s.courses.GetUpload(ctx, uploadID); err != nil {
		return wrapError("trigger_design", "failed to fetch upload", err, store.ErrUploadNotFound)
	}

	// The transition into processing is synchronous; only the terminal
	// transition happens inside the background job.
	s.tracker.Initialize(uploadID, domain.StateProcessing, 10, "Starting AI analysis...")

	genTask, err := s.factory.CreateTask(uploadID)
	if err != nil {
		return wrapError("trigger_design", "failed to create generation task", err)
	}

	if err := s.runner.Submit(ctx, genTask); err != nil {
		msg := "Processing failed: could not schedule generation job"
		if advErr := s.tracker.Advance(uploadID, status.Update{
			State:    status.StatePtr(domain.StateFailed),
			Progress: status.IntPtr(0),
			Message:  status.StringPtr(msg),
		}); advErr != nil {
			s.logger.Error("failed to record failed status", "upload_id", uploadID, "error", advErr)
		}
		return wrapError("trigger_design", "failed to submit generation task", err)
	}

	s.logger.Info("generation job scheduled", "upload_id", uploadID, "task_id", genTask.ID())
	return nil
}
