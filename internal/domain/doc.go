// Package domain contains the core business entities of the course
// generation system: uploads, courses, modules, quizzes, flashcards, and
// the transient processing status of an in-flight generation job. It is
// independent of any specific infrastructure or delivery mechanism; the
// bson/json tags only describe how stores and the API serialize entities.
package domain
