package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// UploadTypePDF is the only document type the pipeline currently accepts.
const UploadTypePDF = "pdf"

// Common validation errors for Upload
var (
	ErrEmptyUploadID       = errors.New("upload ID cannot be empty")
	ErrEmptyUploadUserID   = errors.New("upload user ID cannot be empty")
	ErrEmptyUploadFilename = errors.New("upload filename cannot be empty")
	ErrInvalidUploadType   = errors.New("invalid upload type")
)

// Upload represents a raw submitted document plus metadata, the precursor
// to a Course. Upload records are immutable after creation: progress of
// the generation job lives in the status tracker, not here. Uploads share
// the courses collection with finalized courses and occupy a separate
// identifier space permanently; an upload is never mutated into a course.
type Upload struct {
	ID         string    `bson:"_id"         json:"id"`
	UserID     string    `bson:"user_id"     json:"user_id"`
	Filename   string    `bson:"filename"    json:"filename"`
	Title      string    `bson:"title"       json:"title"`
	Type       string    `bson:"type"        json:"type"`
	PageCount  int       `bson:"page_count,omitempty" json:"page_count,omitempty"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploaded_at"`
	Status     string    `bson:"status"      json:"status"`
}

// NewUpload creates a new Upload for the given user and file metadata.
// It allocates a fresh UUID, defaults the title to the filename sans
// extension when empty, and stamps the upload time.
// Returns an error if validation fails.
func NewUpload(userID, filename, title string) (*Upload, error) {
	if title == "" {
		title = trimPDFExt(filename)
	}

	upload := &Upload{
		ID:         uuid.New().String(),
		UserID:     userID,
		Filename:   filename,
		Title:      title,
		Type:       UploadTypePDF,
		UploadedAt: time.Now().UTC(),
		Status:     string(StateUploaded),
	}

	if err := upload.Validate(); err != nil {
		return nil, err
	}

	return upload, nil
}

// Validate checks if the Upload has valid data.
func (u *Upload) Validate() error {
	if u.ID == "" {
		return ErrEmptyUploadID
	}

	if u.UserID == "" {
		return ErrEmptyUploadUserID
	}

	if u.Filename == "" {
		return ErrEmptyUploadFilename
	}

	if u.Type != UploadTypePDF {
		return ErrInvalidUploadType
	}

	return nil
}

func trimPDFExt(filename string) string {
	const ext = ".pdf"
	if len(filename) > len(ext) && filename[len(filename)-len(ext):] == ext {
		return filename[:len(filename)-len(ext)]
	}
	return filename
}
