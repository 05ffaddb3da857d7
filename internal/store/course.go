package store

import (
	"context"

	"github.com/whitepaper-ai/course-api/internal/domain"
)

// CourseStore defines the interface for the courses collection, which
// holds both bare upload records and finalized courses, disambiguated by
// the presence of course-level fields (objectives).
type CourseStore interface {
	// InsertUpload persists a new upload record.
	InsertUpload(ctx context.Context, upload *domain.Upload) error

	// GetUpload retrieves an upload record by ID, matching only documents
	// of the accepted upload type. Returns ErrUploadNotFound if absent.
	GetUpload(ctx context.Context, id string) (*domain.Upload, error)

	// InsertCourse persists a finalized course. Callers must have
	// persisted every referenced module first.
	InsertCourse(ctx context.Context, course *domain.Course) error

	// GetCourse retrieves a finalized course by ID scoped to the given
	// user. Returns ErrCourseNotFound if absent or owned by another user.
	GetCourse(ctx context.Context, id, userID string) (*domain.Course, error)

	// ListCourses returns all finalized courses for the given user,
	// excluding bare uploads sharing the collection.
	ListCourses(ctx context.Context, userID string) ([]*domain.Course, error)
}
