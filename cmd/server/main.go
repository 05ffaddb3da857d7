// Package main implements the entry point for the course API server,
// which turns uploaded documents into structured learning courses with
// LLM-generated modules, quizzes, and flashcards.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/whitepaper-ai/course-api/internal/config"
	"github.com/whitepaper-ai/course-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	db, client, err := connectDatabase(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db, client)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	app.taskRunner.Start()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_name", cfg.Database.Name,
		"model", cfg.LLM.ModelName)

	return cfg, appLogger, nil
}
