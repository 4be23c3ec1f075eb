package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"budgetzen/internal/core"
	"budgetzen/internal/storage"
)

// TransactionInput is the payload for AddTransaction. Amount is the
// unsigned value the user typed; the canonical sign comes from Type.
type TransactionInput struct {
	Date        core.Date
	Description string
	Amount      core.Money
	Category    string
	Type        core.TransactionType
}

// AddTransaction validates the input, normalizes the amount sign from
// the type, assigns a fresh id and inserts the record, keeping the
// ledger sorted newest first.
func (s *Store) AddTransaction(ctx context.Context, in TransactionInput) (core.Transaction, error) {
	if in.Amount.Cents <= 0 {
		return core.Transaction{}, s.fail(ctx, "add transaction", core.ErrInvalidAmount)
	}

	tx := core.Transaction{
		ID:          uuid.NewString(),
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Type.Signed(in.Amount),
		Category:    in.Category,
		Type:        in.Type,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, s.fail(ctx, "add transaction", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]core.Transaction(nil), s.transactions...), tx)
	sortTransactions(next)
	if err := s.persist(ctx, storage.KeyTransactions, next); err != nil {
		return core.Transaction{}, s.fail(ctx, "add transaction", err)
	}
	s.transactions = next

	s.emit(ctx, "add transaction", fmt.Sprintf("Transaction added: %s for %s",
		tx.Description, s.settings.FormatAmount(tx.Amount.Abs())))
	return tx, nil
}

// EditTransaction replaces the whole record matching updated.ID. Fields
// absent from the caller's form are replaced too; this is not a patch.
func (s *Store) EditTransaction(ctx context.Context, updated core.Transaction) error {
	if err := updated.Validate(); err != nil {
		return s.fail(ctx, "edit transaction", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]core.Transaction(nil), s.transactions...)
	idx := -1
	for i := range next {
		if next[i].ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.fail(ctx, "edit transaction", fmt.Errorf("transaction %s: %w", updated.ID, core.ErrNotFound))
	}
	next[idx] = updated
	sortTransactions(next)
	if err := s.persist(ctx, storage.KeyTransactions, next); err != nil {
		return s.fail(ctx, "edit transaction", err)
	}
	s.transactions = next

	s.emit(ctx, "edit transaction", "Transaction updated")
	return nil
}

// DeleteTransaction removes the record with the given id.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Transaction, 0, len(s.transactions))
	found := false
	for _, tx := range s.transactions {
		if tx.ID == id {
			found = true
			continue
		}
		next = append(next, tx)
	}
	if !found {
		return s.fail(ctx, "delete transaction", fmt.Errorf("transaction %s: %w", id, core.ErrNotFound))
	}
	if err := s.persist(ctx, storage.KeyTransactions, next); err != nil {
		return s.fail(ctx, "delete transaction", err)
	}
	s.transactions = next

	s.emit(ctx, "delete transaction", "Transaction deleted")
	return nil
}

// TotalIncome sums all income amounts. Incomes are non-negative, so
// this is a plain sum.
func (s *Store) TotalIncome() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalByType(core.Income)
}

// TotalExpenses sums all expense amounts. Expenses are stored negative,
// so the result is ≤ 0.
func (s *Store) TotalExpenses() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalByType(core.Expense)
}

// CurrentBalance is totalIncome + totalExpenses; expenses being
// negative makes this a true net.
func (s *Store) CurrentBalance() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalByType(core.Income).Add(s.totalByType(core.Expense))
}

func (s *Store) totalByType(t core.TransactionType) core.Money {
	var sum core.Money
	for _, tx := range s.transactions {
		if tx.Type == t {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// SpentByCategory sums the absolute values of expense transactions in
// the named category. A category with no expenses yields zero.
func (s *Store) SpentByCategory(name string) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spentByCategory(name)
}

func (s *Store) spentByCategory(name string) core.Money {
	var sum core.Money
	for _, tx := range s.transactions {
		if tx.Type == core.Expense && tx.Category == name {
			sum = sum.Add(tx.Amount.Abs())
		}
	}
	return sum
}

// BalanceOverTime produces the running-balance series in chronological
// order, one point per distinct date. When several transactions share a
// date only the day's final balance is kept.
func (s *Store) BalanceOverTime() []core.BalancePoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transactions) == 0 {
		return nil
	}

	asc := append([]core.Transaction(nil), s.transactions...)
	sort.SliceStable(asc, func(i, j int) bool {
		return asc[i].Date.Before(asc[j].Date)
	})

	var points []core.BalancePoint
	var running core.Money
	for _, tx := range asc {
		running = running.Add(tx.Amount)
		if n := len(points); n > 0 && points[n-1].Date.Equal(tx.Date) {
			points[n-1].Balance = running
			continue
		}
		points = append(points, core.BalancePoint{Date: tx.Date, Balance: running})
	}
	return points
}

// ExpensesByCategory aggregates absolute expense totals per category,
// largest first. Ties order by name for determinism.
func (s *Store) ExpensesByCategory() []core.CategoryAmount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expensesByCategory()
}

func (s *Store) expensesByCategory() []core.CategoryAmount {
	sums := make(map[string]core.Money)
	for _, tx := range s.transactions {
		if tx.Type == core.Expense {
			sums[tx.Category] = sums[tx.Category].Add(tx.Amount.Abs())
		}
	}
	out := make([]core.CategoryAmount, 0, len(sums))
	for name, amount := range sums {
		out = append(out, core.CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Overview bundles the headline aggregates for the dashboard.
func (s *Store) Overview() core.Overview {
	s.mu.Lock()
	defer s.mu.Unlock()

	income := s.totalByType(core.Income)
	expenses := s.totalByType(core.Expense)
	return core.Overview{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Add(expenses),
		ByCategory:    s.expensesByCategory(),
	}
}

// sortTransactions orders the ledger by date descending. The sort is
// stable so same-day entries keep their insertion order.
func sortTransactions(txs []core.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[j].Date.Before(txs[i].Date)
	})
}
