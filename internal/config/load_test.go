package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values
// when only the required fields come from the environment.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"COURSEAPI_DATABASE_URI":       "mongodb://localhost:27017",
		"COURSEAPI_LLM_GEMINI_API_KEY": "test-api-key",
		// Explicitly unset the ones we want to test defaults for
		"COURSEAPI_SERVER_PORT":      "",
		"COURSEAPI_SERVER_LOG_LEVEL": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "course_api", cfg.Database.Name, "Default database name should be 'course_api'")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 2, cfg.Task.WorkerCount)
	assert.Equal(t, 100, cfg.Task.QueueSize)
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"COURSEAPI_SERVER_PORT":             "9090",
		"COURSEAPI_SERVER_LOG_LEVEL":        "debug",
		"COURSEAPI_DATABASE_URI":            "mongodb://mongo.internal:27017",
		"COURSEAPI_DATABASE_NAME":           "whitepaper",
		"COURSEAPI_LLM_GEMINI_API_KEY":      "test-api-key",
		"COURSEAPI_LLM_MODEL_NAME":          "gemini-2.5-pro",
		"COURSEAPI_LLM_MAX_RETRIES":         "5",
		"COURSEAPI_LLM_RETRY_DELAY_SECONDS": "4",
		"COURSEAPI_TASK_WORKER_COUNT":       "4",
		"COURSEAPI_TASK_QUEUE_SIZE":         "500",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://mongo.internal:27017", cfg.Database.URI)
	assert.Equal(t, "whitepaper", cfg.Database.Name)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
	assert.Equal(t, 4, cfg.LLM.RetryDelaySeconds)
	assert.Equal(t, 4, cfg.Task.WorkerCount)
	assert.Equal(t, 500, cfg.Task.QueueSize)
}

// TestLoadValidationErrors verifies that Load correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Missing required fields",
			envVars: map[string]string{
				"COURSEAPI_SERVER_PORT":      "9090",
				"COURSEAPI_SERVER_LOG_LEVEL": "debug",
				// Missing Database URI and Gemini API Key
				"COURSEAPI_DATABASE_URI":       "",
				"COURSEAPI_LLM_GEMINI_API_KEY": "",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"COURSEAPI_SERVER_PORT":        "999999", // Port out of range
				"COURSEAPI_SERVER_LOG_LEVEL":   "debug",
				"COURSEAPI_DATABASE_URI":       "mongodb://localhost:27017",
				"COURSEAPI_LLM_GEMINI_API_KEY": "test-api-key",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"COURSEAPI_SERVER_PORT":        "9090",
				"COURSEAPI_SERVER_LOG_LEVEL":   "invalid-level",
				"COURSEAPI_DATABASE_URI":       "mongodb://localhost:27017",
				"COURSEAPI_LLM_GEMINI_API_KEY": "test-api-key",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Zero workers",
			envVars: map[string]string{
				"COURSEAPI_SERVER_PORT":        "9090",
				"COURSEAPI_SERVER_LOG_LEVEL":   "debug",
				"COURSEAPI_DATABASE_URI":       "mongodb://localhost:27017",
				"COURSEAPI_LLM_GEMINI_API_KEY": "test-api-key",
				"COURSEAPI_TASK_WORKER_COUNT":  "0",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
