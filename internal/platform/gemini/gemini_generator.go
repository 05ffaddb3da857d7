package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/whitepaper-ai/course-api/internal/config"
	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/generation"
)

// Truncation limits keep prompts within sane token budgets.
const (
	maxCourseTextChars   = 12000
	maxQuizContentChars  = 1500
	maxCardContentChars  = 1200
	minQuizQuestions     = 2
	maxQuizQuestions     = 5
	minFlashcards        = 3
	maxFlashcards        = 6
	wordsPerQuizQuestion = 300
	wordsPerFlashcard    = 200
	fallbackModuleTime   = 600
)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the
// provided dependencies.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Ensure GeminiGenerator implements generation.Generator interface
var _ generation.Generator = (*GeminiGenerator)(nil)

// GenerateCourse implements generation.Generator.GenerateCourse.
//
// API failures propagate to the caller; an unparseable model response
// instead degrades to a minimal single-module outline so the pipeline
// still produces a course.
func (g *GeminiGenerator) GenerateCourse(ctx context.Context, text, title string) (*generation.CourseOutline, error) {
	if strings.TrimSpace(text) == "" {
		return nil, generation.ErrEmptyText
	}

	analysisText := truncate(text, maxCourseTextChars)

	prompt, err := renderPrompt(coursePromptTmpl, coursePromptData{Title: title, Text: analysisText})
	if err != nil {
		return nil, err
	}

	raw, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed courseSchema
	if jsonBytes, exErr := extractJSON(raw); exErr != nil {
		g.logger.WarnContext(ctx, "course response had no parseable JSON, using fallback outline",
			"error", exErr)
		return fallbackCourse(title), nil
	} else if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		g.logger.WarnContext(ctx, "course JSON did not match expected schema, using fallback outline",
			"error", err)
		return fallbackCourse(title), nil
	}

	if len(parsed.Modules) == 0 {
		g.logger.WarnContext(ctx, "course response contained no modules, using fallback outline")
		return fallbackCourse(title), nil
	}

	outline := &generation.CourseOutline{
		Title:       withDefault(parsed.Title, withDefault(title, "Whitepaper Course")),
		Description: withDefault(parsed.Description, "Learn from this whitepaper"),
		Objectives:  parsed.Objectives,
		Difficulty:  withDefault(parsed.Difficulty, "Intermediate"),
	}
	for _, m := range parsed.Modules {
		outline.Modules = append(outline.Modules, generation.ModuleOutline{
			Title:         m.Title,
			Content:       m.Content,
			EstimatedTime: m.EstimatedTime,
		})
		outline.EstimatedTime += m.EstimatedTime
	}

	g.logger.InfoContext(ctx, "course outline generated",
		"module_count", len(outline.Modules),
		"difficulty", outline.Difficulty)

	return outline, nil
}

// GenerateQuiz implements generation.Generator.GenerateQuiz.
// Question count scales with module length, between 2 and 5. Any failure
// degrades to a single-question stub quiz rather than an error.
func (g *GeminiGenerator) GenerateQuiz(
	ctx context.Context,
	moduleTitle, moduleContent, sourceText string,
) (*domain.Quiz, error) {
	count := clamp(wordCount(moduleContent)/wordsPerQuizQuestion, minQuizQuestions, maxQuizQuestions)

	prompt, err := renderPrompt(quizPromptTmpl, modulePromptData{
		Title:   moduleTitle,
		Content: truncate(moduleContent, maxQuizContentChars),
		Count:   count,
	})
	if err != nil {
		return fallbackQuiz(moduleTitle), nil
	}

	parsed, err := callAndParse[quizSchema](ctx, g, prompt)
	if err != nil || len(parsed.Questions) == 0 {
		g.logger.WarnContext(ctx, "quiz generation failed, using fallback quiz",
			"module_title", moduleTitle,
			"error", err)
		return fallbackQuiz(moduleTitle), nil
	}

	quiz := &domain.Quiz{
		ID:          uuid.New().String(),
		Attempts:    0,
		GeneratedAt: time.Now().UTC(),
	}
	for _, q := range parsed.Questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:            uuid.New().String(),
			Type:          q.Type,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return quiz, nil
}

// GenerateFlashcards implements generation.Generator.GenerateFlashcards.
// Card count scales with module length, between 3 and 6. Any failure
// degrades to a single stub card rather than an error.
func (g *GeminiGenerator) GenerateFlashcards(
	ctx context.Context,
	moduleTitle, moduleContent, sourceText string,
) ([]domain.Flashcard, error) {
	count := clamp(wordCount(moduleContent)/wordsPerFlashcard, minFlashcards, maxFlashcards)

	prompt, err := renderPrompt(flashcardPromptTmpl, modulePromptData{
		Title:   moduleTitle,
		Content: truncate(moduleContent, maxCardContentChars),
		Count:   count,
	})
	if err != nil {
		return fallbackFlashcards(moduleTitle), nil
	}

	parsed, err := callAndParse[[]cardSchema](ctx, g, prompt)
	if err != nil || len(parsed) == 0 {
		g.logger.WarnContext(ctx, "flashcard generation failed, using fallback card",
			"module_title", moduleTitle,
			"error", err)
		return fallbackFlashcards(moduleTitle), nil
	}

	now := time.Now().UTC()
	cards := make([]domain.Flashcard, 0, len(parsed))
	for _, c := range parsed {
		cards = append(cards, domain.Flashcard{
			ID:          uuid.New().String(),
			Front:       withDefault(c.Question, c.Front),
			Back:        withDefault(c.Answer, c.Back),
			Difficulty:  c.Difficulty,
			GeneratedAt: now,
		})
	}

	return cards, nil
}

// callAndParse sends the prompt and unmarshals the first JSON value in
// the response into T.
func callAndParse[T any](ctx context.Context, g *GeminiGenerator, prompt string) (T, error) {
	var parsed T

	raw, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return parsed, err
	}

	jsonBytes, err := extractJSON(raw)
	if err != nil {
		return parsed, err
	}

	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		return parsed, fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}

	return parsed, nil
}

// callWithRetry makes a Gemini API call with exponential backoff and
// jitter. Transient failures retry up to MaxRetries times; content
// blocked by safety filters returns immediately.
func (g *GeminiGenerator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 3
	}
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	for attempt := 0; ; attempt++ {
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attempt+1,
			"max_attempts", maxRetries+1)

		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)

		switch {
		case err != nil:
			// API-level failures are assumed transient.
			g.logger.WarnContext(ctx, "Gemini API call error",
				"attempt", attempt+1,
				"error", err)

		case resp == nil || len(resp.Candidates) == 0:
			return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)

		case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
			return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)

		default:
			text := resp.Text()
			if text == "" {
				return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
			}
			return text, nil
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoff := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rng.Float64()*0.5) * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// fallbackCourse is the outline used when the model's course response
// cannot be parsed.
func fallbackCourse(title string) *generation.CourseOutline {
	return &generation.CourseOutline{
		Title:       withDefault(title, "Whitepaper Course"),
		Description: "Learn key concepts from this whitepaper.",
		Difficulty:  "Intermediate",
		Objectives:  []string{"Understand core concepts", "Analyze key findings"},
		Modules: []generation.ModuleOutline{
			{
				Title:         "Introduction",
				Content:       "# Introduction\n\nOverview of the whitepaper.",
				EstimatedTime: fallbackModuleTime,
			},
		},
		EstimatedTime: fallbackModuleTime,
	}
}

// fallbackQuiz is the stub quiz used when quiz generation fails.
func fallbackQuiz(moduleTitle string) *domain.Quiz {
	return &domain.Quiz{
		ID: uuid.New().String(),
		Questions: []domain.Question{
			{
				ID:            uuid.New().String(),
				Question:      fmt.Sprintf("Main focus of %s?", moduleTitle),
				Options:       []string{"Key concepts", "Details", "Applications", "All"},
				CorrectAnswer: "All",
				Explanation:   "Covers multiple aspects.",
			},
		},
		Attempts:    0,
		GeneratedAt: time.Now().UTC(),
	}
}

// fallbackFlashcards is the stub card set used when flashcard generation fails.
func fallbackFlashcards(moduleTitle string) []domain.Flashcard {
	return []domain.Flashcard{
		{
			ID:          uuid.New().String(),
			Front:       fmt.Sprintf("Key concept from %s", moduleTitle),
			Back:        "Important information",
			Difficulty:  1,
			GeneratedAt: time.Now().UTC(),
		},
	}
}

func renderPrompt(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
