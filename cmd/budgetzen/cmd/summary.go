package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"budgetzen/internal/config"
	"budgetzen/internal/store"
)

// summaryCmd prints the dashboard aggregates: totals, balance, expense
// breakdown and budget highlights.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show balance, totals and budget highlights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(runSummary)
	},
}

func runSummary(_ context.Context, _ *config.Config, st *store.Store) error {
	settings := st.Settings()
	overview := st.Overview()

	fmt.Printf("Income:   %s\n", settings.FormatAmount(overview.TotalIncome))
	fmt.Printf("Expenses: %s\n", settings.FormatAmount(overview.TotalExpenses))
	fmt.Printf("Balance:  %s\n", settings.FormatAmount(overview.Balance))

	if len(overview.ByCategory) > 0 {
		fmt.Println("\nSpending by category:")
		for _, ca := range overview.ByCategory {
			fmt.Printf("  %-16s %s\n", ca.Name, settings.FormatAmount(ca.Amount))
		}
	}

	highlights := st.Highlights()
	if len(highlights) > 0 {
		fmt.Println("\nBudget highlights:")
		for _, h := range highlights {
			fmt.Printf("  %-16s %s of %s (%.0f%%)\n",
				h.Category,
				settings.FormatAmount(h.Spent),
				settings.FormatAmount(h.Amount),
				h.Progress)
		}
	}
	return nil
}
