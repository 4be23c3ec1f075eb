package core

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// BalancePoint is one point of the balance-over-time series: the
// running balance after the last transaction of a calendar day.
type BalancePoint struct {
	Date    Date
	Balance Money
}

// Overview is the dashboard headline aggregate: global totals plus the
// per-category expense breakdown, largest first.
type Overview struct {
	TotalIncome   Money
	TotalExpenses Money
	Balance       Money
	ByCategory    []CategoryAmount
}
