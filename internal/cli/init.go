// Package cli provides common CLI initialization utilities shared by
// the budgetzen commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"budgetzen/internal/config"
	applog "budgetzen/internal/log"
	"budgetzen/internal/storage"
	"budgetzen/internal/store"
)

// SetupLogger initializes structured logging at the given level and
// installs it as the default logger.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentCLI})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// OpenStore opens the configured storage backend, builds the store on
// top of it and loads persisted state. The returned cleanup closes the
// backend.
func OpenStore(ctx context.Context, cfg *config.Config, notify store.NotifyFunc) (*store.Store, func() error, error) {
	repo, err := storage.Open(storage.Backend(cfg.DataBackend), storage.Options{
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		return nil, nil, err
	}

	st := store.New(repo, notify)
	if err := st.Load(ctx); err != nil {
		repo.Close()
		return nil, nil, err
	}
	return st, repo.Close, nil
}

// PrintEvent writes a mutation notification to the terminal, the CLI's
// stand-in for the app's toast surface.
func PrintEvent(event store.Event) {
	if event.Severity == store.SeverityError {
		fmt.Fprintf(os.Stderr, "error: %s\n", event.Message)
		return
	}
	fmt.Println(event.Message)
}
