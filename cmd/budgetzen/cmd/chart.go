package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"budgetzen/internal/charts"
	"budgetzen/internal/config"
	"budgetzen/internal/store"
)

var (
	chartKind string
	chartOut  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a chart PNG from the current data",
	Long: `Render one of the dashboard charts to a PNG file.

Kinds:
  balance     running balance over time
  categories  expense breakdown by category`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(_ context.Context, _ *config.Config, st *store.Store) error {
			renderer := charts.NewRenderer(st.Settings())

			var (
				data []byte
				err  error
			)
			switch chartKind {
			case "balance":
				data, err = renderer.BalanceOverTime(st.BalanceOverTime())
			case "categories":
				data, err = renderer.ExpenseBreakdown(st.ExpensesByCategory())
			default:
				return fmt.Errorf("unknown chart kind %q", chartKind)
			}
			if err != nil {
				return err
			}
			if data == nil {
				fmt.Println("Not enough data to chart")
				return nil
			}

			if err := os.WriteFile(chartOut, data, 0644); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			fmt.Printf("Chart written to %s\n", chartOut)
			return nil
		})
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartKind, "kind", "balance", "chart kind (balance|categories)")
	chartCmd.Flags().StringVar(&chartOut, "out", "chart.png", "output PNG path")
}
