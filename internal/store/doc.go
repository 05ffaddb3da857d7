// Package store defines the persistence interfaces for the course
// generation system and the sentinel errors they return. Implementations
// live under internal/platform; the interfaces assume a document store
// with atomic single-document writes and atomic field-scoped updates,
// but no cross-document transactions. The pipeline compensates for the
// latter by sequencing writes (modules before course).
package store
