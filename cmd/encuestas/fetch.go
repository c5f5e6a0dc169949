package main

import (
	"fmt"

	"github.com/acalderon/encuestas/internal/sheets"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the first worksheet and save it as the local snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err := sheets.FetchAndSave(cmd.Context(), cfg.Sheets); err != nil {
				return fmt.Errorf("sheets.FetchAndSave() > %w", err)
			}

			color.Green("Data successfully fetched and saved to %s", cfg.Sheets.SnapshotFile)
			return nil
		},
	}
}
