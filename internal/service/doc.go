// Package service contains the request-scoped operations of the API:
// accepting uploads, triggering the generation pipeline, reading courses
// with their modules expanded, on-demand quiz/flashcard generation, and
// quiz submission scoring. Services surface errors directly to the
// caller; only the background generation job swallows errors into the
// status tracker.
package service
