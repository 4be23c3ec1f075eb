package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Date is a calendar date with no time-of-day component.
	// All dates are anchored to UTC so comparing two dates never
	// shifts across a timezone boundary.
	Date struct {
		time.Time
	}

	// Transaction is a single signed ledger entry. Expenses carry a
	// negative Amount, incomes a non-negative one.
	Transaction struct {
		ID          string          `json:"id"`
		Date        Date            `json:"date"`
		Description string          `json:"description"`
		Amount      Money           `json:"amount"`
		Category    string          `json:"category"`
		Type        TransactionType `json:"type"`
	}

	// Budget is a per-category spending target. At most one budget
	// exists per category name.
	Budget struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Amount   Money  `json:"amount"`
	}

	// AppCategory is a spending/income category. Built-in entries ship
	// with the app (IsUserDefined false) and can never be deleted.
	AppCategory struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		IconKey       string `json:"iconKey"`
		IsUserDefined bool   `json:"isUserDefined"`
	}

	// Settings holds display preferences. They affect formatting only,
	// never the underlying data.
	Settings struct {
		Currency     string `json:"currency"`
		DateFormat   string `json:"dateFormat"`
		ColorPalette string `json:"colorPalette"`
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrAmountSign       = errors.New("amount sign disagrees with transaction type")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyName        = errors.New("empty name")

	ErrNotFound          = errors.New("not found")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrBudgetExists      = errors.New("budget already exists for category")
	ErrBuiltInCategory   = errors.New("built-in categories cannot be deleted")
	ErrCategoryInUse     = errors.New("category is referenced by transactions or budgets")
)

// ISODate is the wire and storage layout for dates.
const ISODate = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO yyyy-mm-dd string. A full timestamp is
// accepted too; its time-of-day is discarded.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(ISODate, s); err == nil {
		return Date{Time: t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t.Year(), int(t.Month()), t.Day()), nil
	}
	return Date{}, ErrInvalidDate
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String returns the ISO yyyy-mm-dd form.
func (d Date) String() string {
	return d.Format(ISODate)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

// Signed returns amount with the sign this type mandates: expenses
// negative, incomes positive. The input's own sign is ignored.
func (t TransactionType) Signed(amount Money) Money {
	if t == Expense {
		return Money{Cents: -abs64(amount.Cents)}
	}
	return Money{Cents: abs64(amount.Cents)}
}

func (tx Transaction) Validate() error {
	if err := tx.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(tx.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(tx.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	if err := tx.Type.Validate(); err != nil {
		return err
	}
	if tx.Type == Income && tx.Amount.Cents < 0 {
		return ErrAmountSign
	}
	if tx.Type == Expense && tx.Amount.Cents > 0 {
		return ErrAmountSign
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c AppCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// SameName compares two category names the way the registry does:
// case-insensitively.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
