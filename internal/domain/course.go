package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Course and Module
var (
	ErrEmptyCourseID       = errors.New("course ID cannot be empty")
	ErrEmptyCourseUserID   = errors.New("course user ID cannot be empty")
	ErrEmptyCourseTitle    = errors.New("course title cannot be empty")
	ErrEmptyModuleID       = errors.New("module ID cannot be empty")
	ErrEmptyModuleCourseID = errors.New("module course ID cannot be empty")
	ErrEmptyModuleTitle    = errors.New("module title cannot be empty")
)

// Flashcard is one front/back study card attached to a module.
type Flashcard struct {
	ID          string    `bson:"id"                     json:"id"`
	Front       string    `bson:"front"                  json:"front"`
	Back        string    `bson:"back"                   json:"back"`
	Difficulty  int       `bson:"difficulty"             json:"difficulty"`
	GeneratedAt time.Time `bson:"generated_at,omitempty" json:"generated_at,omitempty"`
}

// Question is a single quiz question. Beyond the ID/CorrectAnswer pair
// used for scoring, its contents are opaque to the pipeline.
type Question struct {
	ID            string   `bson:"id"                json:"id"`
	Type          string   `bson:"type,omitempty"    json:"type,omitempty"`
	Question      string   `bson:"question"          json:"question"`
	Options       []string `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer string   `bson:"correctAnswer"     json:"correctAnswer"`
	Explanation   string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// Quiz is embedded in a Module. Attempts is incremented atomically on
// each submission; Score reflects only the most recent submission.
type Quiz struct {
	ID          string     `bson:"id"           json:"id"`
	Questions   []Question `bson:"questions"    json:"questions"`
	Attempts    int        `bson:"attempts"     json:"attempts"`
	Score       *float64   `bson:"score,omitempty" json:"score,omitempty"`
	GeneratedAt time.Time  `bson:"generated_at" json:"generated_at"`
}

// NewQuizShell returns an empty quiz with a freshly allocated ID, zero
// attempts, and no questions. The pipeline attaches one to every module
// it creates; questions are populated later by on-demand generation.
func NewQuizShell() Quiz {
	return Quiz{
		ID:          uuid.New().String(),
		Questions:   []Question{},
		Attempts:    0,
		GeneratedAt: time.Now().UTC(),
	}
}

// Module is one lesson unit with content, a source excerpt, flashcards,
// and a quiz. Each module is owned by exactly one course via CourseID
// (a soft reference, not an enforced relation).
type Module struct {
	ID            string      `bson:"_id"           json:"id"`
	CourseID      string      `bson:"course_id"     json:"course_id"`
	Title         string      `bson:"title"         json:"title"`
	Content       string      `bson:"content"       json:"content"`
	SourceText    string      `bson:"source_text"   json:"source_text"`
	EstimatedTime int         `bson:"estimatedTime" json:"estimatedTime"`
	Flashcards    []Flashcard `bson:"flashcards"    json:"flashcards"`
	Quiz          Quiz        `bson:"quiz"          json:"quiz"`
	Completed     bool        `bson:"completed"     json:"completed"`
	TimeSpent     int         `bson:"timeSpent"     json:"timeSpent"`
}

// Validate checks if the Module has valid data.
func (m *Module) Validate() error {
	if m.ID == "" {
		return ErrEmptyModuleID
	}

	if m.CourseID == "" {
		return ErrEmptyModuleCourseID
	}

	if m.Title == "" {
		return ErrEmptyModuleTitle
	}

	return nil
}

// Course is the finalized, structured learning unit. ModuleIDs is an
// ordered list of references into the modules collection, never embedded
// documents; expansion happens at read time. A course document exists
// only after every module it references has been persisted.
type Course struct {
	ID            string    `bson:"_id"           json:"id"`
	UserID        string    `bson:"user_id"       json:"user_id"`
	Title         string    `bson:"title"         json:"title"`
	Description   string    `bson:"description"   json:"description"`
	Objectives    []string  `bson:"objectives"    json:"objectives"`
	ModuleIDs     []string  `bson:"modules"       json:"modules"`
	EstimatedTime int       `bson:"estimatedTime" json:"estimatedTime"`
	Difficulty    string    `bson:"difficulty"    json:"difficulty"`
	CreatedAt     time.Time `bson:"createdAt"     json:"createdAt"`
	Progress      float64   `bson:"progress"      json:"progress"`
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if c.ID == "" {
		return ErrEmptyCourseID
	}

	if c.UserID == "" {
		return ErrEmptyCourseUserID
	}

	if c.Title == "" {
		return ErrEmptyCourseTitle
	}

	return nil
}
