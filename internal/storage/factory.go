package storage

import (
	"fmt"
	"log/slog"
)

// Backend identifies a KV implementation the factory can open.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// IsValid reports whether the backend names a known implementation.
func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendMemory:
		return true
	}
	return false
}

// Options carries backend-specific settings. Fields irrelevant to the
// selected backend are ignored.
type Options struct {
	SQLiteDBPath string
}

// Open builds the KV for the requested backend. The caller owns the
// returned KV and must Close it.
func Open(backend Backend, opts Options) (KV, error) {
	switch backend {
	case BackendSQLite:
		kv, err := NewSQLiteKV(opts.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		slog.Info("Storage backend ready", "backend", string(backend), "path", opts.SQLiteDBPath)
		return kv, nil
	case BackendMemory:
		slog.Info("Storage backend ready", "backend", string(backend))
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}
