package domain

// ProcessingState represents the lifecycle phase of a generation job.
type ProcessingState string

// Possible processing states. A job enters StateUploaded synchronously
// when the raw content is accepted, StateProcessing synchronously when
// the pipeline is triggered, and one of the terminal states
// asynchronously inside the background job.
const (
	StateUploaded   ProcessingState = "uploaded"
	StateProcessing ProcessingState = "processing"
	StateCompleted  ProcessingState = "completed"
	StateFailed     ProcessingState = "failed"
)

// ProcessingStatus is the transient progress record for one in-flight
// generation job. It has no persistence: entries live only for the
// process lifetime and are lost on restart.
type ProcessingStatus struct {
	ID       string          `json:"id"`
	State    ProcessingState `json:"status"`
	Progress int             `json:"progress"`
	Message  string          `json:"message,omitempty"`
	CourseID string          `json:"course_id,omitempty"`
}

// IsTerminal reports whether the state is completed or failed.
func (s ProcessingState) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// IsValidProcessingState checks if the given state is one of the four
// lifecycle states.
func IsValidProcessingState(state ProcessingState) bool {
	switch state {
	case StateUploaded, StateProcessing, StateCompleted, StateFailed:
		return true
	default:
		return false
	}
}
