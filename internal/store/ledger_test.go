package store

import (
	"context"
	"errors"
	"testing"

	"budgetzen/internal/core"
)

func TestAddTransactionSignsAmounts(t *testing.T) {
	s, _ := newTestStore(t)

	mustAddTx(t, s, "2024-01-01", "Paycheck", 100000, "Salary", core.Income)
	if got := s.TotalIncome(); got.Cents != 100000 {
		t.Fatalf("total income = %d, want 100000", got.Cents)
	}
	if got := s.CurrentBalance(); got.Cents != 100000 {
		t.Fatalf("balance = %d, want 100000", got.Cents)
	}

	tx := mustAddTx(t, s, "2024-01-02", "Groceries", 6000, "Food", core.Expense)
	if tx.Amount.Cents != -6000 {
		t.Fatalf("stored expense amount = %d, want -6000", tx.Amount.Cents)
	}
	if got := s.TotalExpenses(); got.Cents != -6000 {
		t.Fatalf("total expenses = %d, want -6000", got.Cents)
	}
	if got := s.CurrentBalance(); got.Cents != 94000 {
		t.Fatalf("balance = %d, want 94000", got.Cents)
	}
	if got := s.SpentByCategory("Food"); got.Cents != 6000 {
		t.Fatalf("spent on Food = %d, want 6000", got.Cents)
	}
}

func TestAddTransactionRejectsNonPositiveAmount(t *testing.T) {
	s, _ := newTestStore(t)
	d, _ := core.ParseDate("2024-01-01")

	for _, cents := range []int64{0, -500} {
		_, err := s.AddTransaction(context.Background(), TransactionInput{
			Date:        d,
			Description: "Bad",
			Amount:      core.CentsOf(cents),
			Category:    "Food",
			Type:        core.Expense,
		})
		if !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("amount %d: got %v, want ErrInvalidAmount", cents, err)
		}
	}
	if got := len(s.Transactions()); got != 0 {
		t.Fatalf("rejected input must not be stored, got %d records", got)
	}
}

func TestLedgerSortedNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	mustAddTx(t, s, "2024-01-05", "Mid", 100, "Other", core.Expense)
	mustAddTx(t, s, "2024-01-10", "New", 100, "Other", core.Expense)
	mustAddTx(t, s, "2024-01-01", "Old", 100, "Other", core.Expense)

	txs := s.Transactions()
	got := []string{txs[0].Description, txs[1].Description, txs[2].Description}
	want := []string{"New", "Mid", "Old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestEditTransactionReplacesRecord(t *testing.T) {
	s, _ := newTestStore(t)
	tx := mustAddTx(t, s, "2024-01-02", "Groceries", 6000, "Food", core.Expense)

	tx.Description = "Supermarket"
	tx.Amount = core.CentsOf(-7500)
	if err := s.EditTransaction(context.Background(), tx); err != nil {
		t.Fatalf("edit: %v", err)
	}

	txs := s.Transactions()
	if len(txs) != 1 || txs[0].Description != "Supermarket" || txs[0].Amount.Cents != -7500 {
		t.Fatalf("edit not applied: %+v", txs)
	}
}

func TestEditTransactionUnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	d, _ := core.ParseDate("2024-01-01")

	err := s.EditTransaction(context.Background(), core.Transaction{
		ID:          "missing",
		Date:        d,
		Description: "Ghost",
		Amount:      core.CentsOf(-100),
		Category:    "Food",
		Type:        core.Expense,
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	s, _ := newTestStore(t)
	tx := mustAddTx(t, s, "2024-01-02", "Groceries", 6000, "Food", core.Expense)

	if err := s.DeleteTransaction(context.Background(), tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(s.Transactions()); got != 0 {
		t.Fatalf("expected empty ledger, got %d", got)
	}
	if err := s.DeleteTransaction(context.Background(), tx.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestBalanceOverTimeOnePointPerDate(t *testing.T) {
	s, _ := newTestStore(t)

	mustAddTx(t, s, "2024-01-01", "Paycheck", 100000, "Salary", core.Income)
	mustAddTx(t, s, "2024-01-02", "Coffee", 500, "Food", core.Expense)
	mustAddTx(t, s, "2024-01-02", "Lunch", 1500, "Food", core.Expense)
	mustAddTx(t, s, "2024-01-03", "Bus", 300, "Transport", core.Expense)

	points := s.BalanceOverTime()
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d: %+v", len(points), points)
	}
	wantBalances := []int64{100000, 98000, 97700}
	for i, want := range wantBalances {
		if points[i].Balance.Cents != want {
			t.Fatalf("point %d balance = %d, want %d", i, points[i].Balance.Cents, want)
		}
	}
	if !points[0].Date.Before(points[1].Date) || !points[1].Date.Before(points[2].Date) {
		t.Fatalf("points not in chronological order: %+v", points)
	}
}

func TestBalanceOverTimeEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.BalanceOverTime(); got != nil {
		t.Fatalf("expected nil series, got %+v", got)
	}
}

func TestExpensesByCategoryOrdering(t *testing.T) {
	s, _ := newTestStore(t)

	mustAddTx(t, s, "2024-01-01", "Paycheck", 100000, "Salary", core.Income)
	mustAddTx(t, s, "2024-01-02", "Groceries", 6000, "Food", core.Expense)
	mustAddTx(t, s, "2024-01-03", "Repair", 6000, "Transport", core.Expense)
	mustAddTx(t, s, "2024-01-04", "Rent", 90000, "Housing", core.Expense)

	got := s.ExpensesByCategory()
	want := []core.CategoryAmount{
		{Name: "Housing", Amount: core.CentsOf(90000)},
		{Name: "Food", Amount: core.CentsOf(6000)},
		{Name: "Transport", Amount: core.CentsOf(6000)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOverview(t *testing.T) {
	s, _ := newTestStore(t)

	mustAddTx(t, s, "2024-01-01", "Paycheck", 100000, "Salary", core.Income)
	mustAddTx(t, s, "2024-01-02", "Groceries", 6000, "Food", core.Expense)

	ov := s.Overview()
	if ov.TotalIncome.Cents != 100000 || ov.TotalExpenses.Cents != -6000 || ov.Balance.Cents != 94000 {
		t.Fatalf("overview = %+v", ov)
	}
	if len(ov.ByCategory) != 1 || ov.ByCategory[0].Name != "Food" {
		t.Fatalf("overview categories = %+v", ov.ByCategory)
	}
}
