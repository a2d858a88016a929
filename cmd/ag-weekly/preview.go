package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ag-weekly/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch and rank without writing a document",
	Long: `Preview runs the fetch, lookback, and scoring stages and prints the
ranked results as a table (or JSON with --json). No PDF is written; use
it to tune profile weights and the threshold.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results, err := pipeline.New(cfg, os.Stderr).Preview(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return pipeline.FormatJSON(results, os.Stdout)
	}
	pipeline.FormatTable(results, os.Stdout)
	return nil
}
