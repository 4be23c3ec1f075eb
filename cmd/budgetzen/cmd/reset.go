package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"budgetzen/internal/config"
	"budgetzen/internal/store"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data and restore defaults",
	Long: `Clear all transactions and budgets, restore the built-in category
set and default settings. Requires --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			return fmt.Errorf("refusing to reset without --yes")
		}
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			return st.ResetAll(ctx)
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "confirm the reset")
}
