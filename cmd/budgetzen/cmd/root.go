// Package cmd provides CLI commands for budgetzen.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"budgetzen/internal/cli"
	"budgetzen/internal/config"
	"budgetzen/internal/store"
)

var (
	debug   bool
	backend string
	dbPath  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "budgetzen",
	Short: "Local-first personal finance tracker",
	Long: `budgetzen tracks income and expense transactions, organizes them by
category, sets per-category budgets and derives balances and summaries.
All state lives in a local SQLite database; there is no backend.

Example:
  budgetzen tx add --date 2024-01-02 --desc "Groceries" --amount 60 --type expense --category Food
  budgetzen summary
  budgetzen export`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		cli.SetupLogger(level)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend (sqlite|memory), overrides DATA_BACKEND")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path, overrides SQLITE_DB_PATH")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(resetCmd)
}

// runWithStore loads config, opens the configured backend and hands a
// loaded store to fn, closing the backend afterwards.
func runWithStore(fn func(ctx context.Context, cfg *config.Config, st *store.Store) error) error {
	ctx := context.Background()

	cli.LoadEnvFile()
	cfg := config.Load()
	if backend != "" {
		cfg.DataBackend = backend
	}
	if dbPath != "" {
		cfg.SQLiteDBPath = dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, cleanup, err := cli.OpenStore(ctx, cfg, cli.PrintEvent)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, cfg, st)
}
