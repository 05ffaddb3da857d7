package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whitepaper-ai/course-api/internal/config"
	"github.com/whitepaper-ai/course-api/internal/extract"
	"github.com/whitepaper-ai/course-api/internal/generation"
	"github.com/whitepaper-ai/course-api/internal/platform/gemini"
	"github.com/whitepaper-ai/course-api/internal/platform/mongodb"
	"github.com/whitepaper-ai/course-api/internal/service"
	"github.com/whitepaper-ai/course-api/internal/status"
	"github.com/whitepaper-ai/course-api/internal/store"
	"github.com/whitepaper-ai/course-api/internal/task"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	client *mongo.Client

	// Stores (using interfaces for proper abstraction)
	courseStore store.CourseStore
	moduleStore store.ModuleStore

	// Generation pipeline
	generator generation.Generator
	extractor extract.TextExtractor
	tracker   *status.Tracker

	// Service interfaces
	uploadService service.UploadService
	courseService service.CourseService
	quizService   service.QuizService

	// Task handling
	taskRunner *task.Runner
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies that must be established
// before application wiring.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *mongo.Database,
	client *mongo.Client,
) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		client:  client,
		tracker: status.NewTracker(),
	}

	// Initialize stores
	app.courseStore = mongodb.NewMongoCourseStore(db, logger)
	app.moduleStore = mongodb.NewMongoModuleStore(db, logger)

	// Create the LLM generator
	var err error
	app.generator, err = gemini.NewGeminiGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	// Text extraction is stubbed behind the TextExtractor boundary.
	app.extractor = extract.NewStaticExtractor()

	// Initialize task runner and the generation task factory
	app.taskRunner = task.NewRunner(task.RunnerConfig{
		WorkerCount: cfg.Task.WorkerCount,
		QueueSize:   cfg.Task.QueueSize,
	}, logger)
	app.taskRunner.SetErrorHandler(func(t task.Task, err error) {
		logger.Error("background task failed",
			"task_id", t.ID(),
			"task_type", t.Type(),
			"error", err)
	})

	factory := task.NewCourseGenerationTaskFactory(
		app.courseStore,
		app.moduleStore,
		app.generator,
		app.extractor,
		app.tracker,
		logger,
	)

	// Initialize services
	app.uploadService, err = service.NewUploadService(
		app.courseStore, app.tracker, app.taskRunner, factory, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload service: %w", err)
	}

	app.courseService, err = service.NewCourseService(app.courseStore, app.moduleStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize course service: %w", err)
	}

	app.quizService, err = service.NewQuizService(app.moduleStore, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize quiz service: %w", err)
	}

	return app, nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	app.taskRunner.Stop()

	if err := app.client.Disconnect(context.Background()); err != nil {
		app.logger.Error("failed to disconnect from database", "error", err)
	}
}
