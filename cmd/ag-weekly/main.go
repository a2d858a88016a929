// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ag-weekly CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pdiddy/ag-weekly/internal/config"
	"github.com/pdiddy/ag-weekly/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ag-weekly CLI.
var rootCmd = &cobra.Command{
	Use:   "ag-weekly",
	Short: "Weekly arXiv pickup generator for one subject category",
	Long: `ag-weekly fetches recent arXiv submissions for one subject category,
scores them against a reader profile from the configuration file, and
renders everything above the threshold as a dated PDF report.

run writes the weekly pickup list; theorems writes the detailed digest
with extracted main-theorem excerpts; preview ranks without writing a
document.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// An optional .env supplies ARXIV_CONTACT and similar
		// environment overrides.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ag-weekly.yaml or ~/.config/ag-weekly/ag-weekly.yaml)")
}

// loadConfig resolves the --config flag and loads the configuration,
// with extraRequired keys demanded on top of the always-required set.
func loadConfig(extraRequired ...string) (*types.Config, error) {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	return config.Load(cfgFile, extraRequired...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
