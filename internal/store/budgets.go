package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"budgetzen/internal/core"
	"budgetzen/internal/storage"
)

// BudgetStatus is a budget enriched with its derived spending figures.
type BudgetStatus struct {
	core.Budget
	Spent    core.Money
	Progress float64
	IconKey  string
}

// AddBudget creates a spending target for a category. At most one
// budget may exist per category name (exact match); a second add is
// rejected and the register stays unchanged.
func (s *Store) AddBudget(ctx context.Context, category string, amount core.Money) (core.Budget, error) {
	budget := core.Budget{
		ID:       uuid.NewString(),
		Category: category,
		Amount:   amount,
	}
	if err := budget.Validate(); err != nil {
		return core.Budget{}, s.fail(ctx, "add budget", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.budgets {
		if b.Category == category {
			return core.Budget{}, s.fail(ctx, "add budget",
				fmt.Errorf("budget for %s: %w", category, core.ErrBudgetExists))
		}
	}

	next := append(append([]core.Budget(nil), s.budgets...), budget)
	sortBudgets(next)
	if err := s.persist(ctx, storage.KeyBudgets, next); err != nil {
		return core.Budget{}, s.fail(ctx, "add budget", err)
	}
	s.budgets = next

	s.emit(ctx, "add budget", fmt.Sprintf("Budget for %s set to %s",
		budget.Category, s.settings.FormatAmount(budget.Amount)))
	return budget, nil
}

// EditBudget replaces the budget matching updated.ID wholesale.
func (s *Store) EditBudget(ctx context.Context, updated core.Budget) error {
	if err := updated.Validate(); err != nil {
		return s.fail(ctx, "edit budget", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]core.Budget(nil), s.budgets...)
	idx := -1
	for i := range next {
		if next[i].ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.fail(ctx, "edit budget", fmt.Errorf("budget %s: %w", updated.ID, core.ErrNotFound))
	}
	next[idx] = updated
	sortBudgets(next)
	if err := s.persist(ctx, storage.KeyBudgets, next); err != nil {
		return s.fail(ctx, "edit budget", err)
	}
	s.budgets = next

	s.emit(ctx, "edit budget", "Budget updated")
	return nil
}

// DeleteBudget removes the budget with the given id.
func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Budget, 0, len(s.budgets))
	found := false
	for _, b := range s.budgets {
		if b.ID == id {
			found = true
			continue
		}
		next = append(next, b)
	}
	if !found {
		return s.fail(ctx, "delete budget", fmt.Errorf("budget %s: %w", id, core.ErrNotFound))
	}
	if err := s.persist(ctx, storage.KeyBudgets, next); err != nil {
		return s.fail(ctx, "delete budget", err)
	}
	s.budgets = next

	s.emit(ctx, "delete budget", "Budget deleted")
	return nil
}

// BudgetStatuses derives spent/progress for every budget, sorted by
// category like the register itself.
func (s *Store) BudgetStatuses() []BudgetStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budgetStatuses()
}

func (s *Store) budgetStatuses() []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(s.budgets))
	for _, b := range s.budgets {
		spent := s.spentByCategory(b.Category)
		statuses = append(statuses, BudgetStatus{
			Budget:   b,
			Spent:    spent,
			Progress: progress(spent, b.Amount),
			IconKey:  s.iconKeyFor(b.Category),
		})
	}
	return statuses
}

// Highlights returns the top three budgets by descending progress, the
// dashboard's "closest to the limit" view.
func (s *Store) Highlights() []BudgetStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := s.budgetStatuses()
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Progress > statuses[j].Progress
	})
	if len(statuses) > 3 {
		statuses = statuses[:3]
	}
	return statuses
}

// progress is percent-of-budget consumed, clamped to [0,100]. A zero
// target yields zero rather than dividing by it.
func progress(spent, amount core.Money) float64 {
	if amount.Cents <= 0 {
		return 0
	}
	p := float64(spent.Cents) / float64(amount.Cents) * 100
	if p > 100 {
		return 100
	}
	return p
}

func sortBudgets(budgets []core.Budget) {
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].Category < budgets[j].Category
	})
}
