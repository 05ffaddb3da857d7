package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/store"
)

const coursesCollection = "courses"

// MongoCourseStore implements the store.CourseStore interface using a
// MongoDB collection as the storage backend.
type MongoCourseStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoCourseStore creates a new MongoDB implementation of the
// CourseStore interface. If logger is nil, a default logger will be used.
func NewMongoCourseStore(db *mongo.Database, logger *slog.Logger) *MongoCourseStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoCourseStore{
		coll:   db.Collection(coursesCollection),
		logger: logger.With(slog.String("component", "course_store")),
	}
}

// Ensure MongoCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*MongoCourseStore)(nil)

// InsertUpload implements store.CourseStore.InsertUpload
func (s *MongoCourseStore) InsertUpload(ctx context.Context, upload *domain.Upload) error {
	if err := upload.Validate(); err != nil {
		s.logger.Warn("upload validation failed during insert",
			slog.String("error", err.Error()),
			slog.String("upload_id", upload.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if _, err := s.coll.InsertOne(ctx, upload); err != nil {
		return fmt.Errorf("failed to insert upload: %w", err)
	}

	s.logger.Debug("upload inserted", slog.String("upload_id", upload.ID))
	return nil
}

// GetUpload implements store.CourseStore.GetUpload.
// Only documents of the accepted upload type match; a finalized course
// sharing the collection can never be fetched as an upload.
func (s *MongoCourseStore) GetUpload(ctx context.Context, id string) (*domain.Upload, error) {
	filter := bson.M{
		"_id":  id,
		"type": domain.UploadTypePDF,
	}

	var upload domain.Upload
	if err := s.coll.FindOne(ctx, filter).Decode(&upload); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}

	return &upload, nil
}

// InsertCourse implements store.CourseStore.InsertCourse
func (s *MongoCourseStore) InsertCourse(ctx context.Context, course *domain.Course) error {
	if err := course.Validate(); err != nil {
		s.logger.Warn("course validation failed during insert",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if _, err := s.coll.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	s.logger.Debug("course inserted",
		slog.String("course_id", course.ID),
		slog.Int("module_count", len(course.ModuleIDs)))
	return nil
}

// GetCourse implements store.CourseStore.GetCourse
func (s *MongoCourseStore) GetCourse(ctx context.Context, id, userID string) (*domain.Course, error) {
	filter := bson.M{
		"_id":        id,
		"user_id":    userID,
		"objectives": bson.M{"$exists": true},
	}

	var course domain.Course
	if err := s.coll.FindOne(ctx, filter).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &course, nil
}

// ListCourses implements store.CourseStore.ListCourses
func (s *MongoCourseStore) ListCourses(ctx context.Context, userID string) ([]*domain.Course, error) {
	filter := bson.M{
		"user_id":    userID,
		"objectives": bson.M{"$exists": true},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var courses []*domain.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	return courses, nil
}
