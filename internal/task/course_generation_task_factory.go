package task

import (
	"log/slog"

	"github.com/whitepaper-ai/course-api/internal/extract"
	"github.com/whitepaper-ai/course-api/internal/generation"
	"github.com/whitepaper-ai/course-api/internal/status"
	"github.com/whitepaper-ai/course-api/internal/store"
)

// CourseGenerationTaskFactory bundles the dependencies every course
// generation task needs, so the trigger path only supplies the upload ID.
type CourseGenerationTaskFactory struct {
	courses   store.CourseStore
	modules   store.ModuleStore
	generator generation.Generator
	extractor extract.TextExtractor
	tracker   *status.Tracker
	logger    *slog.Logger
}

// NewCourseGenerationTaskFactory creates a new factory.
func NewCourseGenerationTaskFactory(
	courses store.CourseStore,
	modules store.ModuleStore,
	generator generation.Generator,
	extractor extract.TextExtractor,
	tracker *status.Tracker,
	logger *slog.Logger,
) *CourseGenerationTaskFactory {
	return &CourseGenerationTaskFactory{
		courses:   courses,
		modules:   modules,
		generator: generator,
		extractor: extractor,
		tracker:   tracker,
		logger:    logger,
	}
}

// CreateTask creates a new CourseGenerationTask for the given upload.
func (f *CourseGenerationTaskFactory) CreateTask(uploadID string) (Task, error) {
	return NewCourseGenerationTask(
		uploadID,
		f.courses,
		f.modules,
		f.generator,
		f.extractor,
		f.tracker,
		f.logger,
	)
}
