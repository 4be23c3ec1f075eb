package store

import (
	"context"

	"budgetzen/internal/core"
	"budgetzen/internal/storage"
)

// Settings returns the current display preferences.
func (s *Store) Settings() core.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings merges the non-nil fields of patch onto the current
// settings and persists the result.
func (s *Store) UpdateSettings(ctx context.Context, patch core.SettingsPatch) (core.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.settings.Merge(patch)
	if err := s.persist(ctx, storage.KeySettings, merged); err != nil {
		return s.settings, s.fail(ctx, "update settings", err)
	}
	s.settings = merged

	s.emit(ctx, "update settings", "Settings updated")
	return merged, nil
}
