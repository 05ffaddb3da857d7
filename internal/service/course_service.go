package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/store"
)

// ExportFormats is the set of formats the export endpoint acknowledges.
var ExportFormats = map[string]bool{
	"pdf":    true,
	"pptx":   true,
	"notion": true,
}

// CourseDetail is a course with its referenced modules expanded in
// order. Missing module references are skipped rather than failing the
// whole read.
type CourseDetail struct {
	Course  domain.Course
	Modules []domain.Module
}

// CourseService provides read access to finalized courses.
type CourseService interface {
	// GetCourse fetches one course with modules expanded, scoped to the
	// demo user. Returns store.ErrCourseNotFound if absent.
	GetCourse(ctx context.Context, courseID string) (*CourseDetail, error)

	// ListCourses returns all finalized courses for the demo user,
	// excluding bare upload records stored in the same collection.
	ListCourses(ctx context.Context) ([]*domain.Course, error)

	// ExportCourse validates the requested format and returns a
	// placeholder acknowledgment. No stored course is mutated. Returns
	// ErrUnsupportedFormat or store.ErrCourseNotFound.
	ExportCourse(ctx context.Context, courseID, format string) (string, error)
}

type courseServiceImpl struct {
	courses store.CourseStore
	modules store.ModuleStore
	logger  *slog.Logger
}

// NewCourseService creates a new CourseService.
// It returns an error if any of the required dependencies are nil.
func NewCourseService(
	courses store.CourseStore,
	modules store.ModuleStore,
	logger *slog.Logger,
) (CourseService, error) {
	if courses == nil {
		return nil, &Error{Operation: "create_service", Message: "course store cannot be nil"}
	}
	if modules == nil {
		return nil, &Error{Operation: "create_service", Message: "module store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &courseServiceImpl{
		courses: courses,
		modules: modules,
		logger:  logger.With("component", "course_service"),
	}, nil
}

// GetCourse implements CourseService.
func (s *courseServiceImpl) GetCourse(ctx context.Context, courseID string) (*CourseDetail, error) {
	course, err := s.courses.GetCourse(ctx, courseID, DemoUserID)
	if err != nil {
		return nil, wrapError("get_course", "failed to fetch course", err, store.ErrCourseNotFound)
	}

	// Expand module references concurrently, preserving course order.
	slots := make([]*domain.Module, len(course.ModuleIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, moduleID := range course.ModuleIDs {
		g.Go(func() error {
			module, err := s.modules.GetByID(gctx, moduleID)
			if err != nil {
				if errors.Is(err, store.ErrModuleNotFound) {
					// A dangling reference loses one module, not the course.
					s.logger.Warn("course references missing module",
						"course_id", courseID,
						"module_id", moduleID)
					return nil
				}
				return fmt.Errorf("failed to fetch module %s: %w", moduleID, err)
			}
			slots[i] = module
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapError("get_course", "failed to expand modules", err)
	}

	detail := &CourseDetail{Course: *course}
	for _, module := range slots {
		if module != nil {
			detail.Modules = append(detail.Modules, *module)
		}
	}

	return detail, nil
}

// ListCourses implements CourseService.
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	courses, err := s.courses.ListCourses(ctx, DemoUserID)
	if err != nil {
		return nil, wrapError("list_courses", "failed to list courses", err)
	}
	return courses, nil
}

// ExportCourse implements CourseService.
func (s *courseServiceImpl) ExportCourse(ctx context.Context, courseID, format string) (string, error) {
	if !ExportFormats[format] {
		return "", ErrUnsupportedFormat
	}

	if _, err := s.courses.GetCourse(ctx, courseID, DemoUserID); err != nil {
		return "", wrapError("export_course", "failed to fetch course", err, store.ErrCourseNotFound)
	}

	// Real export generation is still stubbed.
	return fmt.Sprintf("Export to %s will start shortly", format), nil
}
