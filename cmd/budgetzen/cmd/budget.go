package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"budgetzen/internal/config"
	"budgetzen/internal/core"
	"budgetzen/internal/store"
)

var (
	budgetCategory string
	budgetAmount   string
	budgetID       string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage per-category budgets",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create a budget for a category",
	Long: `Create a spending target for a category. Each category can have at
most one budget; editing an existing one goes through "budget edit".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			cents, err := core.ParseDecimalToCents(budgetAmount)
			if err != nil {
				return fmt.Errorf("parse --amount: %w", err)
			}
			_, err = st.AddBudget(ctx, budgetCategory, core.CentsOf(cents))
			return err
		})
	},
}

var budgetEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace a budget by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			cents, err := core.ParseDecimalToCents(budgetAmount)
			if err != nil {
				return fmt.Errorf("parse --amount: %w", err)
			}
			return st.EditBudget(ctx, core.Budget{
				ID:       budgetID,
				Category: budgetCategory,
				Amount:   core.CentsOf(cents),
			})
		})
	},
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			return st.DeleteBudget(ctx, args[0])
		})
	},
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budgets with spent and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(_ context.Context, _ *config.Config, st *store.Store) error {
			settings := st.Settings()
			for _, status := range st.BudgetStatuses() {
				fmt.Printf("%s  %-16s %s of %s (%.0f%%)\n",
					status.ID,
					status.Category,
					settings.FormatAmount(status.Spent),
					settings.FormatAmount(status.Amount),
					status.Progress)
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{budgetSetCmd, budgetEditCmd} {
		c.Flags().StringVar(&budgetCategory, "category", "", "category name")
		c.Flags().StringVar(&budgetAmount, "amount", "", "target amount, e.g. 200")
		c.MarkFlagRequired("category")
		c.MarkFlagRequired("amount")
	}
	budgetEditCmd.Flags().StringVar(&budgetID, "id", "", "budget id")
	budgetEditCmd.MarkFlagRequired("id")

	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetEditCmd)
	budgetCmd.AddCommand(budgetRmCmd)
	budgetCmd.AddCommand(budgetListCmd)
}
