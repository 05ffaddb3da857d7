package mocks

import (
	"context"
	"sync"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateCourseFn allows test cases to mock GenerateCourse behavior
	GenerateCourseFn func(ctx context.Context, text, title string) (*generation.CourseOutline, error)

	// GenerateQuizFn allows test cases to mock GenerateQuiz behavior
	GenerateQuizFn func(ctx context.Context, moduleTitle, moduleContent, sourceText string) (*domain.Quiz, error)

	// GenerateFlashcardsFn allows test cases to mock GenerateFlashcards behavior
	GenerateFlashcardsFn func(ctx context.Context, moduleTitle, moduleContent, sourceText string) ([]domain.Flashcard, error)

	// Default responses when no Fn override is provided
	Outline    *generation.CourseOutline
	Quiz       *domain.Quiz
	Flashcards []domain.Flashcard
	Err        error

	mu sync.Mutex

	// Call tracking for verification
	CourseCalls     int
	QuizCalls       int
	FlashcardCalls  int
	CourseTexts     []string
	CourseTitles    []string
	QuizModuleNames []string
}

// GenerateCourse implements the generation.Generator interface
func (m *MockGenerator) GenerateCourse(
	ctx context.Context,
	text, title string,
) (*generation.CourseOutline, error) {
	m.mu.Lock()
	m.CourseCalls++
	m.CourseTexts = append(m.CourseTexts, text)
	m.CourseTitles = append(m.CourseTitles, title)
	m.mu.Unlock()

	if m.GenerateCourseFn != nil {
		return m.GenerateCourseFn(ctx, text, title)
	}
	return m.Outline, m.Err
}

// GenerateQuiz implements the generation.Generator interface
func (m *MockGenerator) GenerateQuiz(
	ctx context.Context,
	moduleTitle, moduleContent, sourceText string,
) (*domain.Quiz, error) {
	m.mu.Lock()
	m.QuizCalls++
	m.QuizModuleNames = append(m.QuizModuleNames, moduleTitle)
	m.mu.Unlock()

	if m.GenerateQuizFn != nil {
		return m.GenerateQuizFn(ctx, moduleTitle, moduleContent, sourceText)
	}
	return m.Quiz, m.Err
}

// GenerateFlashcards implements the generation.Generator interface
func (m *MockGenerator) GenerateFlashcards(
	ctx context.Context,
	moduleTitle, moduleContent, sourceText string,
) ([]domain.Flashcard, error) {
	m.mu.Lock()
	m.FlashcardCalls++
	m.mu.Unlock()

	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, moduleTitle, moduleContent, sourceText)
	}
	return m.Flashcards, m.Err
}
