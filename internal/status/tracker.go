// Package status implements the process-local status tracker: the single
// source of truth for where a generation job is while it is in flight.
// Entries live only for the process lifetime; there is no persistence and
// no eviction. Both are acceptable at demo scale only — a multi-instance
// or restart-safe deployment needs the status externalized into the
// durable store.
package status

import (
	"errors"
	"sync"

	"github.com/whitepaper-ai/course-api/internal/domain"
)

// ErrNotFound indicates the given ID was never initialized in the tracker.
var ErrNotFound = errors.New("processing status not found")

// Update is a partial status update. Nil fields are left unchanged.
type Update struct {
	State    *domain.ProcessingState
	Progress *int
	Message  *string
	CourseID *string
}

// Tracker maps upload IDs to their processing status. It is safe for a
// background job to advance an entry while arbitrarily many pollers read
// it; readers get snapshot copies.
type Tracker struct {
	mu      sync.RWMutex
	entries map[string]*domain.ProcessingStatus
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[string]*domain.ProcessingStatus),
	}
}

// Initialize creates or overwrites the tracked record for id. The new
// record is visible immediately to any concurrent reader.
func (t *Tracker) Initialize(id string, state domain.ProcessingState, progress int, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[id] = &domain.ProcessingStatus{
		ID:       id,
		State:    state,
		Progress: progress,
		Message:  message,
	}
}

// Advance applies a partial update to the tracked record for id. Fields
// left nil in the update are unchanged. Advancing an unknown id returns
// ErrNotFound rather than creating an entry.
func (t *Tracker) Advance(id string, update Update) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[id]
	if !ok {
		return ErrNotFound
	}

	if update.State != nil {
		entry.State = *update.State
	}
	if update.Progress != nil {
		entry.Progress = *update.Progress
	}
	if update.Message != nil {
		entry.Message = *update.Message
	}
	if update.CourseID != nil {
		entry.CourseID = *update.CourseID
	}

	return nil
}

// Get returns a snapshot of the current status for id, or ErrNotFound if
// the id was never initialized.
func (t *Tracker) Get(id string) (domain.ProcessingStatus, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.entries[id]
	if !ok {
		return domain.ProcessingStatus{}, ErrNotFound
	}

	return *entry, nil
}

// Len reports how many entries the tracker currently holds. Entries
// accumulate for the life of the process.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// StatePtr, IntPtr and StringPtr build Update fields inline.
func StatePtr(s domain.ProcessingState) *domain.ProcessingState { return &s }

// IntPtr returns a pointer to v for use in an Update.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to s for use in an Update.
func StringPtr(s string) *string { return &s }
