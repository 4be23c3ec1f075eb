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
	settingCurrency   string
	settingDateFormat string
	settingPalette    string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change display preferences",
	Long: `Show the current display preferences, or change them by passing
flags. Preferences affect formatting only, never the stored data.

Example:
  budgetzen settings --currency EUR --date-format DD/MM/YYYY`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithStore(func(ctx context.Context, _ *config.Config, st *store.Store) error {
			patch := core.SettingsPatch{}
			changed := false
			if cmd.Flags().Changed("currency") {
				patch.Currency = &settingCurrency
				changed = true
			}
			if cmd.Flags().Changed("date-format") {
				patch.DateFormat = &settingDateFormat
				changed = true
			}
			if cmd.Flags().Changed("palette") {
				patch.ColorPalette = &settingPalette
				changed = true
			}

			settings := st.Settings()
			if changed {
				var err error
				settings, err = st.UpdateSettings(ctx, patch)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Currency:    %s\n", settings.Currency)
			fmt.Printf("Date format: %s\n", settings.DateFormat)
			fmt.Printf("Palette:     %s (%s)\n", settings.ColorPalette, settings.Palette().Name)
			return nil
		})
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingCurrency, "currency", "", "currency code, e.g. USD")
	settingsCmd.Flags().StringVar(&settingDateFormat, "date-format", "", "date display pattern")
	settingsCmd.Flags().StringVar(&settingPalette, "palette", "", "color palette id")
}
