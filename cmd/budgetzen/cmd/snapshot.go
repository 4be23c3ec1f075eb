package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"budgetzen/internal/config"
	"budgetzen/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(_ context.Context, cfg *config.Config, st *store.Store) error {
			data, err := st.Export()
			if err != nil {
				return err
			}
			path := exportOut
			if path == "" {
				path = cfg.ExportPath
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore data from a JSON snapshot",
	Long: `Restore state from an exported snapshot. The import applies
atomically: an unparsable file changes nothing. Imported categories are
reconciled against the current built-in set exactly like at startup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			return st.Import(ctx, data)
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default "+store.ExportFileName+")")
}
