package main

import (
	"fmt"

	"github.com/acalderon/encuestas/internal/inference"
	"github.com/acalderon/encuestas/internal/inference/gemini"
	"github.com/acalderon/encuestas/internal/sheets"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the AI a question about the loaded survey snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sheetData, err := sheets.ReadSnapshot(cfg.Sheets.SnapshotFile)
			if err != nil {
				return fmt.Errorf("sheets.ReadSnapshot() > %w", err)
			}

			client := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
			defer func() {
				_ = client.Close()
			}()

			status := inference.NewStatus(cmd.Context(), client, cfg.Gemini.Model, cfg.Gemini.APIKey)
			if !status.Ready {
				color.Yellow("AI not available: %s", status.Reason)
			}

			analyzer := inference.NewAnalyzer(client, status)
			answer := analyzer.GetAnswer(cmd.Context(), args[0], sheetData)
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
