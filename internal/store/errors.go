package store

import "errors"

// Common store errors returned by implementations of the store
// interfaces. Services and handlers match on these with errors.Is.
var (
	// ErrUploadNotFound indicates no upload record exists for the given ID.
	ErrUploadNotFound = errors.New("upload not found")

	// ErrCourseNotFound indicates no finalized course exists for the given
	// ID within the requesting user's scope.
	ErrCourseNotFound = errors.New("course not found")

	// ErrModuleNotFound indicates no module record exists for the given ID.
	ErrModuleNotFound = errors.New("module not found")

	// ErrQuizNotFound indicates the module exists but carries no quiz.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrInvalidEntity indicates an entity failed validation before a write.
	ErrInvalidEntity = errors.New("invalid entity")
)
