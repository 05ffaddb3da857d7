package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitepaper-ai/course-api/internal/api"
	"github.com/whitepaper-ai/course-api/internal/api/middleware"
	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/mocks"
	"github.com/whitepaper-ai/course-api/internal/service"
	"github.com/whitepaper-ai/course-api/internal/status"
	"github.com/whitepaper-ai/course-api/internal/task"
)

type stubRunner struct {
	mu        sync.Mutex
	submitted []task.Task
}

func (r *stubRunner) Submit(_ context.Context, t task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted = append(r.submitted, t)
	return nil
}

type stubTask struct{ id uuid.UUID }

func (t *stubTask) ID() uuid.UUID              { return t.id }
func (t *stubTask) Type() string               { return task.TaskTypeCourseGeneration }
func (t *stubTask) Execute(context.Context) error { return nil }

type stubFactory struct{}

func (f *stubFactory) CreateTask(string) (task.Task, error) {
	return &stubTask{id: uuid.New()}, nil
}

type apiFixture struct {
	courses *mocks.FakeCourseStore
	modules *mocks.FakeModuleStore
	gen     *mocks.MockGenerator
	tracker *status.Tracker
	runner  *stubRunner
	router  chi.Router
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		courses: mocks.NewFakeCourseStore(),
		modules: mocks.NewFakeModuleStore(),
		gen:     &mocks.MockGenerator{},
		tracker: status.NewTracker(),
		runner:  &stubRunner{},
	}

	logger := slog.Default()

	uploadSvc, err := service.NewUploadService(f.courses, f.tracker, f.runner, &stubFactory{}, logger)
	require.NoError(t, err)
	courseSvc, err := service.NewCourseService(f.courses, f.modules, logger)
	require.NoError(t, err)
	quizSvc, err := service.NewQuizService(f.modules, f.gen, logger)
	require.NoError(t, err)

	uploadHandler := api.NewUploadHandler(uploadSvc, f.tracker)
	courseHandler := api.NewCourseHandler(courseSvc)
	quizHandler := api.NewQuizHandler(quizSvc)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/uploads", uploadHandler.CreateUpload)
		r.Post("/uploads/{id}/design", uploadHandler.TriggerDesign)
		r.Get("/processing/{id}", uploadHandler.GetProcessingStatus)
		r.Get("/courses", courseHandler.ListCourses)
		r.Route("/courses/{courseID}", func(r chi.Router) {
			r.Get("/", courseHandler.GetCourse)
			r.Get("/export/{format}", courseHandler.ExportCourse)
			r.Route("/modules/{moduleID}", func(r chi.Router) {
				r.Post("/quiz/generate", quizHandler.GenerateQuiz)
				r.Post("/quiz/submit", quizHandler.SubmitQuiz)
				r.Post("/flashcards/generate", quizHandler.GenerateFlashcards)
			})
		})
	})
	f.router = r
	return f
}

func (f *apiFixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func multipartUpload(t *testing.T, filename, title string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestCreateUploadEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("accepts document", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, multipartUpload(t, "ethics.pdf", "", []byte("file content")))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.UploadResponse
		decodeBody(t, rec, &resp)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "ethics.pdf", resp.Filename)
		assert.Equal(t, "ethics", resp.Title)
		assert.Equal(t, "uploaded", resp.Status)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, multipartUpload(t, "empty.pdf", "", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Uploaded file is empty", resp["error"])
		assert.Zero(t, f.tracker.Len())
	})

	t.Run("rejects missing file field", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("title", "no file"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := f.do(t, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTriggerDesignEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("schedules generation", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, multipartUpload(t, "ethics.pdf", "", []byte("file content")))
		require.Equal(t, http.StatusCreated, rec.Code)
		var upload api.UploadResponse
		decodeBody(t, rec, &upload)

		rec = f.do(t, httptest.NewRequest(http.MethodPost, "/api/uploads/"+upload.ID+"/design", nil))
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp api.TriggerResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, upload.ID, resp.UploadID)
		assert.Equal(t, "processing", resp.Status)

		st, err := f.tracker.Get(upload.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateProcessing, st.State)
		assert.Equal(t, 10, st.Progress)
	})

	t.Run("unknown upload leaves no status entry", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodPost, "/api/uploads/no-such-id/design", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]interface{}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Upload not found", resp["error"])
		assert.Zero(t, f.tracker.Len())
	})
}

func TestProcessingStatusEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("reports tracked state", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.tracker.Initialize("up-1", domain.StateCompleted, 100, "Course created! ID: c-9")
		require.NoError(t, f.tracker.Advance("up-1", status.Update{CourseID: status.StringPtr("c-9")}))

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/processing/up-1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.ProcessingStatusResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, 100, resp.Progress)
		assert.Equal(t, "c-9", resp.CourseID)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/processing/ghost", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func seedCourseWithModule(t *testing.T, f *apiFixture) (*domain.Course, *domain.Module) {
	t.Helper()

	module := &domain.Module{
		ID:         "mod-1",
		CourseID:   "course-1",
		Title:      "Transparency",
		Content:    "Why AI systems must be explainable.",
		SourceText: "AI systems must be transparent.",
		Flashcards: []domain.Flashcard{},
		Quiz: domain.Quiz{
			ID: "quiz-1",
			Questions: []domain.Question{
				{ID: "q1", Question: "First?", CorrectAnswer: "a"},
				{ID: "q2", Question: "Second?", CorrectAnswer: "b"},
			},
		},
	}
	require.NoError(t, f.modules.Insert(context.Background(), module))

	course := &domain.Course{
		ID:         "course-1",
		UserID:     service.DemoUserID,
		Title:      "AI Ethics",
		Objectives: []string{"Understand transparency"},
		ModuleIDs:  []string{"mod-1"},
	}
	require.NoError(t, f.courses.InsertCourse(context.Background(), course))
	return course, module
}

func TestCourseEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("get expands modules", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		seedCourseWithModule(t, f)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/courses/course-1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.CourseDetailResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "AI Ethics", resp.Title)
		require.Len(t, resp.Modules, 1)
		assert.Equal(t, "mod-1", resp.Modules[0].ID)
	})

	t.Run("get unknown course", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/courses/ghost", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list returns empty array without courses", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"courses":[]`)
	})
}

func TestExportEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("acknowledges supported format", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		seedCourseWithModule(t, f)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/courses/course-1/export/pptx", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.ExportResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "pptx", resp.Format)
		assert.Contains(t, resp.Message, "pptx")
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		seedCourseWithModule(t, f)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/courses/course-1/export/docx", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Unsupported export format", resp["error"])
	})
}

func TestQuizEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("submit scores answers", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		seedCourseWithModule(t, f)

		body := strings.NewReader(`{"answers":{"q1":"a","q2":"wrong"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/courses/course-1/modules/mod-1/quiz/submit", body)
		req.Header.Set("Content-Type", "application/json")

		rec := f.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp service.QuizResult
		decodeBody(t, rec, &resp)
		assert.Equal(t, 50.0, resp.Score)
		assert.Equal(t, 1, resp.Correct)
		assert.Equal(t, 2, resp.Total)
		assert.False(t, resp.Passed)
	})

	t.Run("submit without answers field", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		seedCourseWithModule(t, f)

		req := httptest.NewRequest(http.MethodPost, "/api/courses/course-1/modules/mod-1/quiz/submit",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec := f.do(t, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("generate quiz replaces stored quiz", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		seedCourseWithModule(t, f)
		f.gen.Quiz = &domain.Quiz{
			ID:        "quiz-2",
			Questions: []domain.Question{{ID: "n1", Question: "New?", CorrectAnswer: "yes"}},
		}

		rec := f.do(t, httptest.NewRequest(http.MethodPost, "/api/courses/course-1/modules/mod-1/quiz/generate", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp domain.Quiz
		decodeBody(t, rec, &resp)
		assert.Equal(t, "quiz-2", resp.ID)

		stored, err := f.modules.GetByID(context.Background(), "mod-1")
		require.NoError(t, err)
		assert.Equal(t, "quiz-2", stored.Quiz.ID)
	})

	t.Run("generate flashcards for unknown module", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodPost, "/api/courses/course-1/modules/ghost/flashcards/generate", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]interface{}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Module not found", resp["error"])
	})
}
