package store

import (
	"context"
	"errors"
	"testing"

	"budgetzen/internal/core"
)

func findCategory(t *testing.T, s *Store, name string) core.AppCategory {
	t.Helper()
	for _, c := range s.Categories() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return core.AppCategory{}
}

func TestAddCategory(t *testing.T) {
	s, _ := newTestStore(t)

	c, err := s.AddCategory(context.Background(), "  Pets  ", "Gift")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Name != "Pets" {
		t.Fatalf("name = %q, want trimmed %q", c.Name, "Pets")
	}
	if !c.IsUserDefined {
		t.Fatalf("expected user-defined flag")
	}
	if c.IconKey != "Gift" {
		t.Fatalf("icon key = %q, want Gift", c.IconKey)
	}
}

func TestAddCategoryUnknownIconFallsBack(t *testing.T) {
	s, _ := newTestStore(t)

	c, err := s.AddCategory(context.Background(), "Crafts", "NoSuchIcon")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.IconKey != core.FallbackIconKey {
		t.Fatalf("icon key = %q, want %q", c.IconKey, core.FallbackIconKey)
	}
}

func TestAddCategoryDuplicateCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)

	// collides with the built-in "Food" regardless of case
	if _, err := s.AddCategory(context.Background(), "food", ""); !errors.Is(err, core.ErrDuplicateCategory) {
		t.Fatalf("got %v, want ErrDuplicateCategory", err)
	}

	if _, err := s.AddCategory(context.Background(), "Pets", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddCategory(context.Background(), "PETS", ""); !errors.Is(err, core.ErrDuplicateCategory) {
		t.Fatalf("got %v, want ErrDuplicateCategory", err)
	}
}

func TestAddCategoryEmptyName(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.AddCategory(context.Background(), "   ", ""); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("got %v, want ErrEmptyName", err)
	}
}

func TestDeleteCategoryGuards(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.DeleteCategory(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("unknown id: got %v, want ErrNotFound", err)
	}

	builtIn := findCategory(t, s, "Food")
	if err := s.DeleteCategory(ctx, builtIn.ID); !errors.Is(err, core.ErrBuiltInCategory) {
		t.Fatalf("built-in: got %v, want ErrBuiltInCategory", err)
	}

	c, err := s.AddCategory(ctx, "Pets", "Gift")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	mustAddTx(t, s, "2024-01-01", "Vet", 4000, "Pets", core.Expense)
	if err := s.DeleteCategory(ctx, c.ID); !errors.Is(err, core.ErrCategoryInUse) {
		t.Fatalf("referenced: got %v, want ErrCategoryInUse", err)
	}
}

func TestDeleteCategoryInUseByBudget(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCategory(ctx, "Pets", "Gift")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	mustSetBudget(t, s, "Pets", 10000)
	if err := s.DeleteCategory(ctx, c.ID); !errors.Is(err, core.ErrCategoryInUse) {
		t.Fatalf("got %v, want ErrCategoryInUse", err)
	}
}

func TestDeleteCategoryUnreferenced(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c, err := s.AddCategory(ctx, "Pets", "Gift")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.DeleteCategory(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if containsName(s.Categories(), "Pets") {
		t.Fatalf("category still present after delete")
	}
}

func TestCategoriesSortedByName(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.AddCategory(context.Background(), "aquarium", ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	categories := s.Categories()
	if categories[0].Name != "aquarium" {
		t.Fatalf("expected case-insensitive sort to place %q first, got %q",
			"aquarium", categories[0].Name)
	}
}
