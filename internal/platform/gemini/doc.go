// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It turns extracted document text into a course
// outline and, per module, quizzes and flashcard sets.
//
// API calls retry transient failures with exponential backoff and
// jitter. Responses are requested as JSON but defensively scanned for
// the first balanced JSON value, since models occasionally wrap output
// in prose. Quiz and flashcard generation degrade to a minimal stub on
// failure instead of erroring; course generation degrades only when the
// model responds with unparseable content.
package gemini
