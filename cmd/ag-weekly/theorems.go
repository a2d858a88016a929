// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/ag-weekly/internal/pipeline"
)

var theoremsCmd = &cobra.Command{
	Use:   "theorems",
	Short: "Fetch, rank, and write the theorem digest PDF",
	Long: `Theorems executes one weekly cycle and writes the detailed digest: the
top limits.max_details results carry full author names, the abstract
URL, and a main-theorem excerpt extracted from the paper PDF. The
remaining results are listed title-only when
output.include_others_titles is set.

Extraction is best effort: a paper whose download or parse fails is
listed with a fixed not-found line instead of stopping the run.`,
	RunE: runTheorems,
}

func init() {
	theoremsCmd.Flags().String("schedule", "", "cron expression; keep running on this schedule until interrupted")

	rootCmd.AddCommand(theoremsCmd)
}

func runTheorems(cmd *cobra.Command, args []string) error {
	return executeCycle(cmd, pipeline.Options{Theorems: true}, "limits.max_details")
}
