package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"budgetzen/internal/core"
	"budgetzen/internal/storage"
)

// ExportFileName is the conventional name for exported snapshots.
const ExportFileName = "budgetzen_data.json"

// ErrSnapshotParse marks an import document that is not valid JSON.
// Nothing is applied when this is returned.
var ErrSnapshotParse = errors.New("snapshot is not valid JSON")

// Snapshot is the export document: the full state exactly as held in
// memory.
type Snapshot struct {
	Transactions  []core.Transaction `json:"transactions"`
	Budgets       []core.Budget      `json:"budgets"`
	AppCategories []core.AppCategory `json:"appCategories"`
	Settings      core.Settings      `json:"settings"`
}

// Export serializes the full state to a pretty-printed JSON document.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	snap := Snapshot{
		Transactions:  append([]core.Transaction{}, s.transactions...),
		Budgets:       append([]core.Budget{}, s.budgets...),
		AppCategories: append([]core.AppCategory{}, s.categories...),
		Settings:      s.settings,
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Import restores state from an exported document and applies it
// atomically: on any parse failure the prior state is left untouched.
//
// Individual top-level keys are forgiving — a missing or wrongly typed
// key falls back to its default (empty collections, default settings,
// fresh built-in categories) without rejecting the rest. Only a
// document that is not JSON at all is a hard failure. Imported
// categories run through the same reconciliation as startup load.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var raw struct {
		Transactions  json.RawMessage `json:"transactions"`
		Budgets       json.RawMessage `json:"budgets"`
		AppCategories json.RawMessage `json:"appCategories"`
		Settings      json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return s.fail(ctx, "import", fmt.Errorf("%w: %v", ErrSnapshotParse, err))
	}

	var transactions []core.Transaction
	decodeKey(ctx, storage.KeyTransactions, raw.Transactions, &transactions)
	sortTransactions(transactions)

	var budgets []core.Budget
	decodeKey(ctx, storage.KeyBudgets, raw.Budgets, &budgets)
	sortBudgets(budgets)

	var stored []core.AppCategory
	decodeKey(ctx, storage.KeyCategories, raw.AppCategories, &stored)
	categories := reconcileCategories(stored, freshDefaultCategories())

	var patch core.SettingsPatch
	decodeKey(ctx, storage.KeySettings, raw.Settings, &patch)
	settings := core.DefaultSettings().Merge(patch)

	entries, err := marshalEntries(map[string]any{
		storage.KeyTransactions: transactions,
		storage.KeyBudgets:      budgets,
		storage.KeyCategories:   categories,
		storage.KeySettings:     settings,
	})
	if err != nil {
		return s.fail(ctx, "import", err)
	}
	if err := s.repo.PutAll(ctx, entries); err != nil {
		return s.fail(ctx, "import", err)
	}

	s.mu.Lock()
	s.transactions = transactions
	s.budgets = budgets
	s.categories = categories
	s.settings = settings
	s.mu.Unlock()

	s.emit(ctx, "import", "Data imported")
	return nil
}

// decodeKey fills out from one top-level snapshot key. A missing key or
// a value of the wrong JSON type is ignored, leaving out at its
// default.
func decodeKey(ctx context.Context, key string, raw json.RawMessage, out any) {
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.WarnContext(ctx, "Ignoring snapshot key with unexpected shape",
			"key", key, "error", err)
		resetValue(out)
	}
}

// resetValue zeroes the decode target after a partial unmarshal.
func resetValue(out any) {
	switch v := out.(type) {
	case *[]core.Transaction:
		*v = nil
	case *[]core.Budget:
		*v = nil
	case *[]core.AppCategory:
		*v = nil
	case *core.SettingsPatch:
		*v = core.SettingsPatch{}
	}
}
