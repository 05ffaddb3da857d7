package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/store"
)

const modulesCollection = "modules"

// MongoModuleStore implements the store.ModuleStore interface using a
// MongoDB collection as the storage backend.
type MongoModuleStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoModuleStore creates a new MongoDB implementation of the
// ModuleStore interface. If logger is nil, a default logger will be used.
func NewMongoModuleStore(db *mongo.Database, logger *slog.Logger) *MongoModuleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoModuleStore{
		coll:   db.Collection(modulesCollection),
		logger: logger.With(slog.String("component", "module_store")),
	}
}

// Ensure MongoModuleStore implements store.ModuleStore interface
var _ store.ModuleStore = (*MongoModuleStore)(nil)

// Insert implements store.ModuleStore.Insert
func (s *MongoModuleStore) Insert(ctx context.Context, module *domain.Module) error {
	if err := module.Validate(); err != nil {
		s.logger.Warn("module validation failed during insert",
			slog.String("error", err.Error()),
			slog.String("module_id", module.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if _, err := s.coll.InsertOne(ctx, module); err != nil {
		return fmt.Errorf("failed to insert module: %w", err)
	}

	s.logger.Debug("module inserted",
		slog.String("module_id", module.ID),
		slog.String("course_id", module.CourseID))
	return nil
}

// GetByID implements store.ModuleStore.GetByID
func (s *MongoModuleStore) GetByID(ctx context.Context, id string) (*domain.Module, error) {
	var module domain.Module
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&module); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}

	return &module, nil
}

// ReplaceQuiz implements store.ModuleStore.ReplaceQuiz
func (s *MongoModuleStore) ReplaceQuiz(ctx context.Context, moduleID string, quiz *domain.Quiz) error {
	update := bson.M{"$set": bson.M{"quiz": quiz}}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": moduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace quiz: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrModuleNotFound
	}

	s.logger.Debug("quiz replaced",
		slog.String("module_id", moduleID),
		slog.String("quiz_id", quiz.ID))
	return nil
}

// ReplaceFlashcards implements store.ModuleStore.ReplaceFlashcards
func (s *MongoModuleStore) ReplaceFlashcards(ctx context.Context, moduleID string, cards []domain.Flashcard) error {
	update := bson.M{"$set": bson.M{"flashcards": cards}}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": moduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace flashcards: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrModuleNotFound
	}

	s.logger.Debug("flashcards replaced",
		slog.String("module_id", moduleID),
		slog.Int("card_count", len(cards)))
	return nil
}

// RecordQuizResult implements store.ModuleStore.RecordQuizResult.
// The increment and the score write go out as one update so concurrent
// submissions never lose an attempt.
func (s *MongoModuleStore) RecordQuizResult(ctx context.Context, moduleID string, score float64) error {
	update := bson.M{
		"$inc": bson.M{"quiz.attempts": 1},
		"$set": bson.M{"quiz.score": score},
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": moduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to record quiz result: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrModuleNotFound
	}

	return nil
}
