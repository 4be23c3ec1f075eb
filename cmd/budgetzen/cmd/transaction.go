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
	txDate     string
	txDesc     string
	txAmount   string
	txCategory string
	txType     string
	txID       string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long: `Record an income or expense transaction. The amount is entered
unsigned; expenses are stored negative automatically.

Example:
  budgetzen tx add --date 2024-01-01 --desc "Paycheck" --amount 1000 --type income --category Salary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			date, err := core.ParseDate(txDate)
			if err != nil {
				return fmt.Errorf("parse --date: %w", err)
			}
			cents, err := core.ParseDecimalToCents(txAmount)
			if err != nil {
				return fmt.Errorf("parse --amount: %w", err)
			}
			_, err = st.AddTransaction(ctx, store.TransactionInput{
				Date:        date,
				Description: txDesc,
				Amount:      core.CentsOf(cents),
				Category:    txCategory,
				Type:        core.TransactionType(txType),
			})
			return err
		})
	},
}

var txEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace a transaction by id",
	Long: `Replace the whole transaction record with the given id. All fields
must be supplied again; this is not a partial patch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			date, err := core.ParseDate(txDate)
			if err != nil {
				return fmt.Errorf("parse --date: %w", err)
			}
			cents, err := core.ParseDecimalToCents(txAmount)
			if err != nil {
				return fmt.Errorf("parse --amount: %w", err)
			}
			kind := core.TransactionType(txType)
			return st.EditTransaction(ctx, core.Transaction{
				ID:          txID,
				Date:        date,
				Description: txDesc,
				Amount:      kind.Signed(core.CentsOf(cents)),
				Category:    txCategory,
				Type:        kind,
			})
		})
	},
}

var txRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			return st.DeleteTransaction(ctx, args[0])
		})
	},
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(_ context.Context, _ *config.Config, st *store.Store) error {
			settings := st.Settings()
			for _, tx := range st.Transactions() {
				fmt.Printf("%s  %-12s %-28s %-16s %s\n",
					tx.ID,
					settings.FormatDate(tx.Date.String()),
					tx.Description,
					tx.Category,
					settings.FormatAmount(tx.Amount))
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{txAddCmd, txEditCmd} {
		c.Flags().StringVar(&txDate, "date", "", "transaction date (yyyy-mm-dd)")
		c.Flags().StringVar(&txDesc, "desc", "", "description")
		c.Flags().StringVar(&txAmount, "amount", "", "unsigned amount, e.g. 12.34")
		c.Flags().StringVar(&txCategory, "category", "", "category name")
		c.Flags().StringVar(&txType, "type", "expense", "income or expense")
		c.MarkFlagRequired("date")
		c.MarkFlagRequired("desc")
		c.MarkFlagRequired("amount")
		c.MarkFlagRequired("category")
	}
	txEditCmd.Flags().StringVar(&txID, "id", "", "transaction id")
	txEditCmd.MarkFlagRequired("id")

	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txEditCmd)
	txCmd.AddCommand(txRmCmd)
	txCmd.AddCommand(txListCmd)
}
