package mocks

import (
	"context"
	"sync"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/store"
)

// FakeCourseStore is an in-memory store.CourseStore. It records the
// order of every write so tests can assert that module inserts precede
// the course insert.
type FakeCourseStore struct {
	mu sync.Mutex

	Uploads map[string]*domain.Upload
	Courses map[string]*domain.Course

	// WriteLog records "upload:<id>", "course:<id>" entries in insert order.
	WriteLog []string

	// Error overrides
	InsertUploadErr error
	GetUploadErr    error
	InsertCourseErr error
}

// NewFakeCourseStore creates an empty FakeCourseStore.
func NewFakeCourseStore() *FakeCourseStore {
	return &FakeCourseStore{
		Uploads: make(map[string]*domain.Upload),
		Courses: make(map[string]*domain.Course),
	}
}

// InsertUpload implements store.CourseStore.
func (f *FakeCourseStore) InsertUpload(_ context.Context, upload *domain.Upload) error {
	if f.InsertUploadErr != nil {
		return f.InsertUploadErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *upload
	f.Uploads[upload.ID] = &cp
	f.WriteLog = append(f.WriteLog, "upload:"+upload.ID)
	return nil
}

// GetUpload implements store.CourseStore.
func (f *FakeCourseStore) GetUpload(_ context.Context, id string) (*domain.Upload, error) {
	if f.GetUploadErr != nil {
		return nil, f.GetUploadErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	upload, ok := f.Uploads[id]
	if !ok {
		return nil, store.ErrUploadNotFound
	}
	cp := *upload
	return &cp, nil
}

// InsertCourse implements store.CourseStore.
func (f *FakeCourseStore) InsertCourse(_ context.Context, course *domain.Course) error {
	if f.InsertCourseErr != nil {
		return f.InsertCourseErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *course
	f.Courses[course.ID] = &cp
	f.WriteLog = append(f.WriteLog, "course:"+course.ID)
	return nil
}

// GetCourse implements store.CourseStore.
func (f *FakeCourseStore) GetCourse(_ context.Context, id, userID string) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	course, ok := f.Courses[id]
	if !ok || course.UserID != userID {
		return nil, store.ErrCourseNotFound
	}
	cp := *course
	return &cp, nil
}

// CourseCount reports how many courses have been inserted.
func (f *FakeCourseStore) CourseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Courses)
}

// ListCourses implements store.CourseStore.
func (f *FakeCourseStore) ListCourses(_ context.Context, userID string) ([]*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Course
	for _, course := range f.Courses {
		if course.UserID == userID {
			cp := *course
			out = append(out, &cp)
		}
	}
	return out, nil
}

// FakeModuleStore is an in-memory store.ModuleStore sharing a write log
// with a FakeCourseStore when wired through SharedLog.
type FakeModuleStore struct {
	mu sync.Mutex

	Modules map[string]*domain.Module

	// SharedLog, when set, receives "module:<id>" entries in insert order
	// alongside the course store's writes.
	SharedLog *FakeCourseStore

	InsertErr  error
	GetErr     error
	ReplaceErr error
	RecordErr  error
}

// NewFakeModuleStore creates an empty FakeModuleStore.
func NewFakeModuleStore() *FakeModuleStore {
	return &FakeModuleStore{
		Modules: make(map[string]*domain.Module),
	}
}

// Insert implements store.ModuleStore.
func (f *FakeModuleStore) Insert(_ context.Context, module *domain.Module) error {
	if f.InsertErr != nil {
		return f.InsertErr
	}

	f.mu.Lock()
	cp := *module
	f.Modules[module.ID] = &cp
	f.mu.Unlock()

	if f.SharedLog != nil {
		f.SharedLog.mu.Lock()
		f.SharedLog.WriteLog = append(f.SharedLog.WriteLog, "module:"+module.ID)
		f.SharedLog.mu.Unlock()
	}
	return nil
}

// GetByID implements store.ModuleStore.
func (f *FakeModuleStore) GetByID(_ context.Context, id string) (*domain.Module, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	module, ok := f.Modules[id]
	if !ok {
		return nil, store.ErrModuleNotFound
	}
	cp := *module
	return &cp, nil
}

// ReplaceQuiz implements store.ModuleStore.
func (f *FakeModuleStore) ReplaceQuiz(_ context.Context, moduleID string, quiz *domain.Quiz) error {
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	module, ok := f.Modules[moduleID]
	if !ok {
		return store.ErrModuleNotFound
	}
	module.Quiz = *quiz
	return nil
}

// ReplaceFlashcards implements store.ModuleStore.
func (f *FakeModuleStore) ReplaceFlashcards(_ context.Context, moduleID string, cards []domain.Flashcard) error {
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	module, ok := f.Modules[moduleID]
	if !ok {
		return store.ErrModuleNotFound
	}
	module.Flashcards = cards
	return nil
}

// RecordQuizResult implements store.ModuleStore.
func (f *FakeModuleStore) RecordQuizResult(_ context.Context, moduleID string, score float64) error {
	if f.RecordErr != nil {
		return f.RecordErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	module, ok := f.Modules[moduleID]
	if !ok {
		return store.ErrModuleNotFound
	}
	module.Quiz.Attempts++
	module.Quiz.Score = &score
	return nil
}
