// Package cli holds the common initialization steps for cmd/mybudget:
// env file, logging, configuration and the local store.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"mybudget/internal/backend"
	"mybudget/internal/config"
	"mybudget/internal/log"
	"mybudget/internal/store"
)

// SetupLogger initializes structured logging and installs it as the
// process-wide default.
func SetupLogger() *log.Logger {
	logger := log.Default(log.ComponentApp)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the configured local store backend.
// Returns the store or exits the process on failure.
func OpenStore(cfg *config.Config, logger *log.Logger) store.Store {
	s, err := backend.Open(cfg, logger)
	if err != nil {
		logger.Error("failed to open local store",
			log.FieldError, err, "backend", cfg.StoreBackend)
		os.Exit(1)
	}
	return s
}
