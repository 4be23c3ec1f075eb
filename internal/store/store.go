// Package store owns the in-memory state tree of the finance tracker:
// the transaction ledger, the budget register, the category registry
// and the display settings.
//
// All mutation operations run synchronously to completion, persist the
// changed collection through the storage port, and emit a notification
// event. Derived aggregates are pure reads over current state,
// recomputed on demand. The state each component owns is mutated only
// by that component's operations; cross-component reads never mutate.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"budgetzen/internal/core"
	"budgetzen/internal/storage"
)

// Store is the single state tree every collaborator operates on. It is
// created explicitly and injected; there are no hidden package-level
// instances.
type Store struct {
	repo   storage.KV
	notify NotifyFunc

	mu           sync.Mutex
	transactions []core.Transaction
	budgets      []core.Budget
	categories   []core.AppCategory
	settings     core.Settings
}

// New creates a store over the given storage backend. notify may be
// nil when the caller has no notification surface.
func New(repo storage.KV, notify NotifyFunc) *Store {
	return &Store{
		repo:       repo,
		notify:     notify,
		categories: freshDefaultCategories(),
		settings:   core.DefaultSettings(),
	}
}

func freshDefaultCategories() []core.AppCategory {
	defaults := core.DefaultCategories(uuid.NewString)
	sortCategories(defaults)
	return defaults
}

// Load reads the four logical collections from storage. The keys load
// independently: a corrupt value falls back to its default without
// blocking the others. Only a storage-level read failure aborts.
func (s *Store) Load(ctx context.Context) error {
	var (
		transactions []core.Transaction
		budgets      []core.Budget
		stored       []core.AppCategory
		patch        core.SettingsPatch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.loadKey(gctx, storage.KeyTransactions, &transactions)
	})
	g.Go(func() error {
		return s.loadKey(gctx, storage.KeyBudgets, &budgets)
	})
	g.Go(func() error {
		return s.loadKey(gctx, storage.KeyCategories, &stored)
	})
	g.Go(func() error {
		return s.loadKey(gctx, storage.KeySettings, &patch)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	sortTransactions(transactions)
	sortBudgets(budgets)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = transactions
	s.budgets = budgets
	s.categories = reconcileCategories(stored, freshDefaultCategories())
	s.settings = core.DefaultSettings().Merge(patch)

	slog.InfoContext(ctx, "State loaded",
		"transactions", len(s.transactions),
		"budgets", len(s.budgets),
		"categories", len(s.categories))
	return nil
}

// loadKey reads one logical key into out. A missing key leaves out at
// its zero value; a corrupt value is logged and discarded.
func (s *Store) loadKey(ctx context.Context, key string, out any) error {
	raw, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.WarnContext(ctx, "Stored entry is corrupt, using defaults",
			"key", key, "error", err)
		resetValue(out)
	}
	return nil
}

// ResetAll clears transactions and budgets, restores the built-in
// category defaults and the default settings, all as one atomic write.
func (s *Store) ResetAll(ctx context.Context) error {
	categories := freshDefaultCategories()
	settings := core.DefaultSettings()

	entries, err := marshalEntries(map[string]any{
		storage.KeyTransactions: []core.Transaction{},
		storage.KeyBudgets:      []core.Budget{},
		storage.KeyCategories:   categories,
		storage.KeySettings:     settings,
	})
	if err != nil {
		return s.fail(ctx, "reset", err)
	}
	if err := s.repo.PutAll(ctx, entries); err != nil {
		return s.fail(ctx, "reset", err)
	}

	s.mu.Lock()
	s.transactions = nil
	s.budgets = nil
	s.categories = categories
	s.settings = settings
	s.mu.Unlock()

	s.emit(ctx, "reset", "All data has been reset")
	return nil
}

// persist writes one collection. The caller passes the candidate value;
// in-memory state is swapped only after the write succeeds, so a
// storage failure leaves prior state untouched.
func (s *Store) persist(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.repo.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func marshalEntries(values map[string]any) (map[string][]byte, error) {
	entries := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		entries[key] = raw
	}
	return entries, nil
}

// Transactions returns a copy of the ledger, newest first.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...)
}

// Budgets returns a copy of the budget list, sorted by category.
func (s *Store) Budgets() []core.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Budget(nil), s.budgets...)
}
