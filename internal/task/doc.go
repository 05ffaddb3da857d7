// Package task provides the background processing machinery for the
// course generation pipeline: a Task interface, a buffered in-memory
// queue consumed by a pool of workers, and the CourseGenerationTask that
// performs the upload → extract → generate → persist → finalize sequence.
//
// Tasks are fire-and-forget: the triggering request returns before the
// task finishes, and the task boundary is the exception boundary — no
// error inside a task ever reaches an HTTP caller directly, it is only
// observable through the status tracker. There is no task persistence,
// no retry, and no deduplication of concurrent submissions for the same
// upload; those limitations are deliberate at this scale.
package task
