package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATA_BACKEND", "SQLITE_DB_PATH", "EXPORT_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataBackend != BackendSQLite {
		t.Errorf("DataBackend = %q, want %q", cfg.DataBackend, BackendSQLite)
	}
	if cfg.SQLiteDBPath != "./data/budgetzen.db" {
		t.Errorf("SQLiteDBPath = %q", cfg.SQLiteDBPath)
	}
	if cfg.ExportPath != "budgetzen_data.json" {
		t.Errorf("ExportPath = %q", cfg.ExportPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", BackendMemory)
	t.Setenv("SQLITE_DB_PATH", "/tmp/custom.db")
	t.Setenv("EXPORT_PATH", "backup.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DataBackend != BackendMemory {
		t.Errorf("DataBackend = %q, want %q", cfg.DataBackend, BackendMemory)
	}
	if cfg.SQLiteDBPath != "/tmp/custom.db" {
		t.Errorf("SQLiteDBPath = %q", cfg.SQLiteDBPath)
	}
	if cfg.ExportPath != "backup.json" {
		t.Errorf("ExportPath = %q", cfg.ExportPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoadBadLogLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "shouting")
	if cfg := Load(); cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info fallback", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid sqlite",
			cfg: Config{
				DataBackend:  BackendSQLite,
				SQLiteDBPath: filepath.Join(tmp, "data", "app.db"),
				ExportPath:   "budgetzen_data.json",
			},
		},
		{
			name: "valid memory",
			cfg: Config{
				DataBackend: BackendMemory,
				ExportPath:  "budgetzen_data.json",
			},
		},
		{
			name: "unknown backend",
			cfg: Config{
				DataBackend: "postgres",
				ExportPath:  "budgetzen_data.json",
			},
			wantErr: "invalid data backend",
		},
		{
			name: "sqlite without path",
			cfg: Config{
				DataBackend: BackendSQLite,
				ExportPath:  "budgetzen_data.json",
			},
			wantErr: "database path cannot be empty",
		},
		{
			name: "empty export path",
			cfg: Config{
				DataBackend: BackendMemory,
			},
			wantErr: "export path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
