package generation

import (
	"context"

	"github.com/whitepaper-ai/course-api/internal/domain"
)

// ModuleOutline is one module skeleton produced by the generator. The
// pipeline turns each outline into a full module record with an empty
// quiz shell and no flashcards.
type ModuleOutline struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	EstimatedTime int    `json:"estimatedTime"`
}

// CourseOutline is the course skeleton produced by the generator from
// extracted document text. EstimatedTime is the sum of the module
// estimates.
type CourseOutline struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Objectives    []string        `json:"objectives"`
	Difficulty    string          `json:"difficulty"`
	EstimatedTime int             `json:"estimatedTime"`
	Modules       []ModuleOutline `json:"modules"`
}

// Generator is the black-box content generation capability. Given
// extracted text it produces a course skeleton, and on demand a quiz or
// flashcard set for a single module.
type Generator interface {
	// GenerateCourse creates a course outline from extracted document
	// text. The title is a hint from the upload metadata.
	GenerateCourse(ctx context.Context, text, title string) (*CourseOutline, error)

	// GenerateQuiz creates a fresh quiz for one module. The returned quiz
	// carries a new ID, zero attempts, and freshly allocated question IDs.
	GenerateQuiz(ctx context.Context, moduleTitle, moduleContent, sourceText string) (*domain.Quiz, error)

	// GenerateFlashcards creates a fresh flashcard set for one module.
	GenerateFlashcards(ctx context.Context, moduleTitle, moduleContent, sourceText string) ([]domain.Flashcard, error)
}
