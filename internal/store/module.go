package store

import (
	"context"

	"github.com/whitepaper-ai/course-api/internal/domain"
)

// ModuleStore defines the interface for the modules collection, flat and
// keyed by module ID. The module document is the canonical location for
// quiz state; course documents only reference modules by ID.
type ModuleStore interface {
	// Insert persists a new module record.
	Insert(ctx context.Context, module *domain.Module) error

	// GetByID retrieves a module by its ID.
	// Returns ErrModuleNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Module, error)

	// ReplaceQuiz overwrites the module's quiz wholesale. Repeated calls
	// replace rather than merge. Returns ErrModuleNotFound if absent.
	ReplaceQuiz(ctx context.Context, moduleID string, quiz *domain.Quiz) error

	// ReplaceFlashcards overwrites the module's flashcard set wholesale.
	// Returns ErrModuleNotFound if absent.
	ReplaceFlashcards(ctx context.Context, moduleID string, cards []domain.Flashcard) error

	// RecordQuizResult atomically increments the module's quiz attempt
	// counter and sets its score in a single field-scoped update.
	// Returns ErrModuleNotFound if absent.
	RecordQuizResult(ctx context.Context, moduleID string, score float64) error
}
