package service

import (
	"context"
	"log/slog"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/generation"
	"github.com/whitepaper-ai/course-api/internal/store"
)

// PassThreshold is the minimum score considered a passing submission.
const PassThreshold = 70.0

// QuizResult is the outcome of one quiz submission.
type QuizResult struct {
	Score   float64 `json:"score"`
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Passed  bool    `json:"passed"`
}

// QuizService provides the synchronous, request-scoped counterpart of
// the pipeline's generation step: per-module quiz and flashcard
// generation, and quiz submission scoring.
type QuizService interface {
	// GenerateQuiz generates a fresh quiz for the module and overwrites
	// the stored one. Repeated calls replace rather than append. Returns
	// store.ErrModuleNotFound if the module does not exist.
	GenerateQuiz(ctx context.Context, moduleID string) (*domain.Quiz, error)

	// GenerateFlashcards is symmetric, operating on the flashcards field.
	GenerateFlashcards(ctx context.Context, moduleID string) ([]domain.Flashcard, error)

	// SubmitQuiz scores the submitted answers against the module's stored
	// quiz, atomically increments the attempt counter and records the
	// score. Returns store.ErrModuleNotFound or store.ErrQuizNotFound.
	SubmitQuiz(ctx context.Context, courseID, moduleID string, answers map[string]string) (*QuizResult, error)
}

type quizServiceImpl struct {
	modules   store.ModuleStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewQuizService creates a new QuizService.
// It returns an error if any of the required dependencies are nil.
func NewQuizService(
	modules store.ModuleStore,
	generator generation.Generator,
	logger *slog.Logger,
) (QuizService, error) {
	if modules == nil {
		return nil, &Error{Operation: "create_service", Message: "module store cannot be nil"}
	}
	if generator == nil {
		return nil, &Error{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &quizServiceImpl{
		modules:   modules,
		generator: generator,
		logger:    logger.With("component", "quiz_service"),
	}, nil
}

// GenerateQuiz implements QuizService.
func (s *quizServiceImpl) GenerateQuiz(ctx context.Context, moduleID string) (*domain.Quiz, error) {
	module, err := s.modules.GetByID(ctx, moduleID)
	if err != nil {
		return nil, wrapError("generate_quiz", "failed to fetch module", err, store.ErrModuleNotFound)
	}

	quiz, err := s.generator.GenerateQuiz(ctx, module.Title, module.Content, module.SourceText)
	if err != nil {
		return nil, wrapError("generate_quiz", "quiz generation failed", err)
	}

	if err := s.modules.ReplaceQuiz(ctx, moduleID, quiz); err != nil {
		return nil, wrapError("generate_quiz", "failed to save quiz", err, store.ErrModuleNotFound)
	}

	s.logger.Info("quiz generated",
		"module_id", moduleID,
		"question_count", len(quiz.Questions))

	return quiz, nil
}

// GenerateFlashcards implements QuizService.
func (s *quizServiceImpl) GenerateFlashcards(ctx context.Context, moduleID string) ([]domain.Flashcard, error) {
	module, err := s.modules.GetByID(ctx, moduleID)
	if err != nil {
		return nil, wrapError("generate_flashcards", "failed to fetch module", err, store.ErrModuleNotFound)
	}

	cards, err := s.generator.GenerateFlashcards(ctx, module.Title, module.Content, module.SourceText)
	if err != nil {
		return nil, wrapError("generate_flashcards", "flashcard generation failed", err)
	}

	if err := s.modules.ReplaceFlashcards(ctx, moduleID, cards); err != nil {
		return nil, wrapError("generate_flashcards", "failed to save flashcards", err, store.ErrModuleNotFound)
	}

	s.logger.Info("flashcards generated",
		"module_id", moduleID,
		"card_count", len(cards))

	return cards, nil
}

// SubmitQuiz implements QuizService.
func (s *quizServiceImpl) SubmitQuiz(
	ctx context.Context,
	courseID, moduleID string,
	answers map[string]string,
) (*QuizResult, error) {
	module, err := s.modules.GetByID(ctx, moduleID)
	if err != nil {
		return nil, wrapError("submit_quiz", "failed to fetch module", err, store.ErrModuleNotFound)
	}

	// The module record is the canonical quiz location; a module that is
	// not owned by the addressed course is treated as absent.
	if module.CourseID != courseID {
		return nil, store.ErrModuleNotFound
	}

	if module.Quiz.ID == "" {
		return nil, store.ErrQuizNotFound
	}

	correct := 0
	total := len(module.Quiz.Questions)
	for _, question := range module.Quiz.Questions {
		// A missing answer key is simply a non-match.
		if answers[question.ID] == question.CorrectAnswer {
			correct++
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 100
	}

	if err := s.modules.RecordQuizResult(ctx, moduleID, score); err != nil {
		return nil, wrapError("submit_quiz", "failed to record result", err, store.ErrModuleNotFound)
	}

	s.logger.Info("quiz submitted",
		"module_id", moduleID,
		"score", score,
		"correct", correct,
		"total", total)

	return &QuizResult{
		Score:   score,
		Correct: correct,
		Total:   total,
		Passed:  score >= PassThreshold,
	}, nil
}
