package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitepaper-ai/course-api/internal/domain"
	"github.com/whitepaper-ai/course-api/internal/mocks"
	"github.com/whitepaper-ai/course-api/internal/service"
	"github.com/whitepaper-ai/course-api/internal/store"
)

func seedCourse(t *testing.T, courses *mocks.FakeCourseStore, modules *mocks.FakeModuleStore, moduleIDs []string) *domain.Course {
	t.Helper()

	ctx := context.Background()
	for _, id := range moduleIDs {
		require.NoError(t, modules.Insert(ctx, &domain.Module{
			ID:       id,
			CourseID: "course-1",
			Title:    "Module " + id,
			Quiz:     domain.NewQuizShell(),
		}))
	}

	course := &domain.Course{
		ID:         "course-1",
		UserID:     service.DemoUserID,
		Title:      "AI Ethics",
		Objectives: []string{"Understand transparency"},
		ModuleIDs:  moduleIDs,
		Difficulty: "intermediate",
	}
	require.NoError(t, courses.InsertCourse(ctx, course))
	return course
}

func TestGetCourse_ExpandsModulesInOrder(t *testing.T) {
	t.Parallel()

	courses := mocks.NewFakeCourseStore()
	modules := mocks.NewFakeModuleStore()
	seedCourse(t, courses, modules, []string{"m3", "m1", "m2"})

	svc, err := service.NewCourseService(courses, modules, slog.Default())
	require.NoError(t, err)

	detail, err := svc.GetCourse(context.Background(), "course-1")
	require.NoError(t, err)

	assert.Equal(t, "AI Ethics", detail.Course.Title)
	require.Len(t, detail.Modules, 3)
	// Course order, not lexical order.
	assert.Equal(t, "m3", detail.Modules[0].ID)
	assert.Equal(t, "m1", detail.Modules[1].ID)
	assert.Equal(t, "m2", detail.Modules[2].ID)
}

func TestGetCourse_SkipsDanglingModuleRefs(t *testing.T) {
	t.Parallel()

	courses := mocks.NewFakeCourseStore()
	modules := mocks.NewFakeModuleStore()
	course := seedCourse(t, courses, modules, []string{"m1", "m2"})
	course.ModuleIDs = []string{"m1", "ghost", "m2"}
	require.NoError(t, courses.InsertCourse(context.Background(), course))

	svc, err := service.NewCourseService(courses, modules, slog.Default())
	require.NoError(t, err)

	detail, err := svc.GetCourse(context.Background(), "course-1")
	require.NoError(t, err)

	require.Len(t, detail.Modules, 2, "dangling reference drops one module, not the course")
	assert.Equal(t, "m1", detail.Modules[0].ID)
	assert.Equal(t, "m2", detail.Modules[1].ID)
}

func TestGetCourse_NotFound(t *testing.T) {
	t.Parallel()

	svc, err := service.NewCourseService(mocks.NewFakeCourseStore(), mocks.NewFakeModuleStore(), slog.Default())
	require.NoError(t, err)

	_, err = svc.GetCourse(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrCourseNotFound)
}

func TestGetCourse_OtherUsersCourseHidden(t *testing.T) {
	t.Parallel()

	courses := mocks.NewFakeCourseStore()
	modules := mocks.NewFakeModuleStore()
	require.NoError(t, courses.InsertCourse(context.Background(), &domain.Course{
		ID:     "course-9",
		UserID: "someone_else",
		Title:  "Private",
	}))

	svc, err := service.NewCourseService(courses, modules, slog.Default())
	require.NoError(t, err)

	_, err = svc.GetCourse(context.Background(), "course-9")
	assert.ErrorIs(t, err, store.ErrCourseNotFound)
}

func TestListCourses(t *testing.T) {
	t.Parallel()

	courses := mocks.NewFakeCourseStore()
	modules := mocks.NewFakeModuleStore()
	seedCourse(t, courses, modules, []string{"m1"})

	svc, err := service.NewCourseService(courses, modules, slog.Default())
	require.NoError(t, err)

	list, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "course-1", list[0].ID)
}

func TestExportCourse(t *testing.T) {
	t.Parallel()

	courses := mocks.NewFakeCourseStore()
	modules := mocks.NewFakeModuleStore()
	seedCourse(t, courses, modules, []string{"m1"})

	svc, err := service.NewCourseService(courses, modules, slog.Default())
	require.NoError(t, err)

	t.Run("supported formats acknowledged", func(t *testing.T) {
		for _, format := range []string{"pdf", "pptx", "notion"} {
			msg, err := svc.ExportCourse(context.Background(), "course-1", format)
			require.NoError(t, err)
			assert.Contains(t, msg, format)
		}
	})

	t.Run("unsupported format rejected", func(t *testing.T) {
		_, err := svc.ExportCourse(context.Background(), "course-1", "docx")
		assert.ErrorIs(t, err, service.ErrUnsupportedFormat)
	})

	t.Run("missing course", func(t *testing.T) {
		_, err := svc.ExportCourse(context.Background(), "missing", "pdf")
		assert.ErrorIs(t, err, store.ErrCourseNotFound)
	})

	t.Run("no stored state mutated", func(t *testing.T) {
		_, err := svc.ExportCourse(context.Background(), "course-1", "pdf")
		require.NoError(t, err)
		stored, err := courses.GetCourse(context.Background(), "course-1", service.DemoUserID)
		require.NoError(t, err)
		assert.Equal(t, "AI Ethics", stored.Title)
	})
}
