package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/extract"
	"github.com/whitepaper-ai/course-api/internal/generation"
	"github.com/whitepaper-ai/course-api/internal/status"
	"github.com/whitepaper-ai/course-api/internal/store"
)

// Common dependency errors
var (
	ErrNilCourseStore = errors.New("course store cannot be nil")
	ErrNilModuleStore = errors.New("module store cannot be nil")
	ErrNilGenerator   = errors.New("generator cannot be nil")
	ErrNilExtractor   = errors.New("extractor cannot be nil")
	ErrNilTracker     = errors.New("status tracker cannot be nil")
	ErrNilLogger      = errors.New("logger cannot be nil")
	ErrEmptyUploadID  = errors.New("upload ID cannot be empty")
)

// CourseGenerationTask implements the Task interface for the background
// job that turns one upload into a persisted course. Any error anywhere
// in the sequence is caught at this boundary and converted into a
// terminal failed status with a human-readable message; partial module
// writes committed before the failure are not rolled back.
type CourseGenerationTask struct {
	id        uuid.UUID
	uploadID  string
	courses   store.CourseStore
	modules   store.ModuleStore
	generator generation.Generator
	extractor extract.TextExtractor
	tracker   *status.Tracker
	logger    *slog.Logger
}

// NewCourseGenerationTask creates a new course generation task for the
// given upload. Returns an error if any dependency is nil.
func NewCourseGenerationTask(
	uploadID string,
	courses store.CourseStore,
	modules store.ModuleStore,
	generator generation.Generator,
	extractor extract.TextExtractor,
	tracker *status.Tracker,
	logger *slog.Logger,
) (*CourseGenerationTask, error) {
	if courses == nil {
		return nil, ErrNilCourseStore
	}
	if modules == nil {
		return nil, ErrNilModuleStore
	}
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	if tracker == nil {
		return nil, ErrNilTracker
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if uploadID == "" {
		return nil, ErrEmptyUploadID
	}

	return &CourseGenerationTask{
		id:        uuid.New(),
		uploadID:  uploadID,
		courses:   courses,
		modules:   modules,
		generator: generator,
		extractor: extractor,
		tracker:   tracker,
		logger:    logger.With("task_type", TaskTypeCourseGeneration, "upload_id", uploadID),
	}, nil
}

// ID returns the task's unique identifier
func (t *CourseGenerationTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *CourseGenerationTask) Type() string {
	return TaskTypeCourseGeneration
}

// Execute runs the generation job. On failure the status tracker entry
// for the upload becomes terminal failed with progress reset to 0; the
// returned error exists only for the runner's logging. There is no
// automatic retry.
func (t *CourseGenerationTask) Execute(ctx context.Context) error {
	t.logger.Info("starting course generation")

	if err := t.run(ctx); err != nil {
		msg := "Processing failed: " + err.Error()
		if advErr := t.tracker.Advance(t.uploadID, status.Update{
			State:    status.StatePtr(domain.StateFailed),
			Progress: status.IntPtr(0),
			Message:  status.StringPtr(msg),
		}); advErr != nil {
			t.logger.Error("failed to record failed status", "error", advErr)
		}
		return err
	}

	return nil
}

// run performs the pipeline sequence. Steps execute strictly in order;
// every module insert happens before the course insert.
func (t *CourseGenerationTask) run(ctx context.Context) error {
	// 1. Re-fetch the upload record; fatal if it disappeared.
	upload, err := t.courses.GetUpload(ctx, t.uploadID)
	if err != nil {
		return fmt.Errorf("failed to retrieve upload: %w", err)
	}

	// 2. Obtain the extracted document text.
	text, err := t.extractor.ExtractText(ctx, t.uploadID)
	if err != nil {
		return fmt.Errorf("failed to extract document text: %w", err)
	}

	// 3. Advance status before the expensive generation call.
	if err := t.tracker.Advance(t.uploadID, status.Update{
		Progress: status.IntPtr(30),
		Message:  status.StringPtr("Generating course structure..."),
	}); err != nil {
		t.logger.Warn("failed to advance status before generation", "error", err)
	}

	// 4. Generate the course skeleton. No partial artifacts exist yet, so
	// a failure here persists nothing.
	outline, err := t.generator.GenerateCourse(ctx, text, upload.Title)
	if err != nil {
		return fmt.Errorf("failed to generate course structure: %w", err)
	}

	t.logger.Info("course structure generated", "module_count", len(outline.Modules))

	// 5. The course gets its own identifier, distinct from the upload's.
	courseID := uuid.New().String()

	// 6. Persist every module before the course document that references
	// them, so a course never points at a module that does not exist.
	moduleIDs := make([]string, 0, len(outline.Modules))
	for _, skeleton := range outline.Modules {
		module := &domain.Module{
			ID:            uuid.New().String(),
			CourseID:      courseID,
			Title:         skeleton.Title,
			Content:       skeleton.Content,
			SourceText:    text,
			EstimatedTime: skeleton.EstimatedTime,
			Flashcards:    []domain.Flashcard{},
			Quiz:          domain.NewQuizShell(),
			Completed:     false,
			TimeSpent:     0,
		}

		if err := t.modules.Insert(ctx, module); err != nil {
			return fmt.Errorf("failed to save module %q: %w", skeleton.Title, err)
		}

		moduleIDs = append(moduleIDs, module.ID)
	}

	// 7. Persist the course referencing module IDs, never embedded modules.
	course := &domain.Course{
		ID:            courseID,
		UserID:        upload.UserID,
		Title:         outline.Title,
		Description:   outline.Description,
		Objectives:    outline.Objectives,
		ModuleIDs:     moduleIDs,
		EstimatedTime: outline.EstimatedTime,
		Difficulty:    outline.Difficulty,
		CreatedAt:     time.Now().UTC(),
		Progress:      0,
	}

	if err := t.courses.InsertCourse(ctx, course); err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}

	// 8. Terminal status with the new course recorded.
	if err := t.tracker.Advance(t.uploadID, status.Update{
		State:    status.StatePtr(domain.StateCompleted),
		Progress: status.IntPtr(100),
		Message:  status.StringPtr("Course created! ID: " + courseID),
		CourseID: status.StringPtr(courseID),
	}); err != nil {
		// The artifacts are persisted; losing the status update only hurts
		// pollers, so log and carry on.
		t.logger.Error("failed to record completed status", "error", err, "course_id", courseID)
	}

	t.logger.Info("course generation complete", "course_id", courseID, "module_count", len(moduleIDs))
	return nil
}
