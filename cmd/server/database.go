package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whitepaper-ai/course-api/internal/config"
	"github.com/whitepaper-ai/course-api/internal/platform/mongodb"
)

// connectDatabase establishes the MongoDB connection and returns the
// application database handle plus the client for shutdown.
func connectDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Database, *mongo.Client, error) {
	client, err := mongodb.Connect(ctx, cfg.Database.URI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	logger.Info("Database connection established", "database", cfg.Database.Name)

	return client.Database(cfg.Database.Name), client, nil
}
