package main

import (
	"fmt"

	"github.com/acalderon/encuestas/internal/report"
	"github.com/acalderon/encuestas/internal/sheets"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var (
		question   string
		answer     string
		outputFile string
	)

	command := &cobra.Command{
		Use:   "report",
		Short: "Render the loaded snapshot as a markdown and PDF report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sheetData, err := sheets.ReadSnapshot(cfg.Sheets.SnapshotFile)
			if err != nil {
				return fmt.Errorf("sheets.ReadSnapshot() > %w", err)
			}

			pdfPath, err := report.Write(sheetData, report.Options{
				Question: question,
				Answer:   answer,
			}, outputFile)
			if err != nil {
				return fmt.Errorf("report.Write() > %w", err)
			}

			color.Green("Report written to %s and %s", outputFile, pdfPath)
			return nil
		},
	}
	command.Flags().StringVar(&question, "question", "", "question to include in the analysis section")
	command.Flags().StringVar(&answer, "answer", "", "answer to include in the analysis section")
	command.Flags().StringVarP(&outputFile, "output", "o", "informe.md", "markdown output path")
	return command
}
