package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"budgetzen/internal/core"
	"budgetzen/internal/storage"
)

// Categories returns a copy of the registry, sorted by name.
func (s *Store) Categories() []core.AppCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.AppCategory(nil), s.categories...)
}

// AddCategory creates a user-defined category. Names are unique
// case-insensitively across built-in and user-defined entries alike.
func (s *Store) AddCategory(ctx context.Context, name, iconKey string) (core.AppCategory, error) {
	category := core.AppCategory{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		IconKey:       core.ResolveIconKey(iconKey),
		IsUserDefined: true,
	}
	if err := category.Validate(); err != nil {
		return core.AppCategory{}, s.fail(ctx, "add category", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if core.SameName(existing.Name, category.Name) {
			return core.AppCategory{}, s.fail(ctx, "add category",
				fmt.Errorf("category %q: %w", category.Name, core.ErrDuplicateCategory))
		}
	}

	next := append(append([]core.AppCategory(nil), s.categories...), category)
	sortCategories(next)
	if err := s.persist(ctx, storage.KeyCategories, next); err != nil {
		return core.AppCategory{}, s.fail(ctx, "add category", err)
	}
	s.categories = next

	s.emit(ctx, "add category", fmt.Sprintf("Category %q created", category.Name))
	return category, nil
}

// DeleteCategory removes a user-defined category. Built-ins are
// protected, as is any category still referenced by a transaction or a
// budget.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.fail(ctx, "delete category", fmt.Errorf("category %s: %w", id, core.ErrNotFound))
	}

	target := s.categories[idx]
	if !target.IsUserDefined {
		return s.fail(ctx, "delete category",
			fmt.Errorf("category %q: %w", target.Name, core.ErrBuiltInCategory))
	}
	if s.categoryInUse(target.Name) {
		return s.fail(ctx, "delete category",
			fmt.Errorf("category %q: %w", target.Name, core.ErrCategoryInUse))
	}

	next := append([]core.AppCategory(nil), s.categories[:idx]...)
	next = append(next, s.categories[idx+1:]...)
	if err := s.persist(ctx, storage.KeyCategories, next); err != nil {
		return s.fail(ctx, "delete category", err)
	}
	s.categories = next

	s.emit(ctx, "delete category", fmt.Sprintf("Category %q removed", target.Name))
	return nil
}

// categoryInUse reports whether any transaction or budget references
// the name. References are by exact category string.
func (s *Store) categoryInUse(name string) bool {
	for _, tx := range s.transactions {
		if tx.Category == name {
			return true
		}
	}
	for _, b := range s.budgets {
		if b.Category == name {
			return true
		}
	}
	return false
}

// iconKeyFor resolves the icon of the named category, falling back to
// the default icon for unknown names.
func (s *Store) iconKeyFor(name string) string {
	for _, c := range s.categories {
		if c.Name == name {
			return c.IconKey
		}
	}
	return core.FallbackIconKey
}

// sortCategories orders by name ascending, case-insensitively.
func sortCategories(categories []core.AppCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		a, b := strings.ToLower(categories[i].Name), strings.ToLower(categories[j].Name)
		if a != b {
			return a < b
		}
		return categories[i].Name < categories[j].Name
	})
}
