package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/whitepaper-ai/course-api/internal/api/shared"
	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/service"
)

// SubmitQuizRequest represents the request body for a quiz submission.
// Answers maps question IDs to the chosen answer text.
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// FlashcardsResponse wraps a freshly generated flashcard set.
type FlashcardsResponse struct {
	ModuleID   string             `json:"module_id"`
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// QuizHandler handles per-module quiz and flashcard HTTP requests
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// GenerateQuiz handles POST /api/courses/{courseID}/modules/{moduleID}/quiz/generate
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")
	if moduleID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing module ID")
		return
	}

	quiz, err := h.quizService.GenerateQuiz(r.Context(), moduleID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quiz)
}

// GenerateFlashcards handles POST /api/courses/{courseID}/modules/{moduleID}/flashcards/generate
func (h *QuizHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")
	if moduleID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing module ID")
		return
	}

	cards, err := h.quizService.GenerateFlashcards(r.Context(), moduleID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FlashcardsResponse{
		ModuleID:   moduleID,
		Flashcards: cards,
	})
}

// SubmitQuiz handles POST /api/courses/{courseID}/modules/{moduleID}/quiz/submit
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	moduleID := chi.URLParam(r, "moduleID")

	var req SubmitQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.quizService.SubmitQuiz(r.Context(), courseID, moduleID, req.Answers)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
