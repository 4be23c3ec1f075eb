package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"budgetzen/internal/config"
	"budgetzen/internal/store"
)

var categoryIcon string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a user-defined category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			_, err := st.AddCategory(ctx, args[0], categoryIcon)
			return err
		})
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a user-defined category",
	Long: `Delete a user-defined category. Built-in categories cannot be
deleted, nor can a category still referenced by transactions or
budgets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			return st.DeleteCategory(ctx, args[0])
		})
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(_ context.Context, _ *config.Config, st *store.Store) error {
			for _, c := range st.Categories() {
				kind := "built-in"
				if c.IsUserDefined {
					kind = "user"
				}
				fmt.Printf("%s  %-16s %-14s %s\n", c.ID, c.Name, c.IconKey, kind)
			}
			return nil
		})
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryIcon, "icon", "", "icon key (unknown keys fall back to Package)")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categoryListCmd)
}
