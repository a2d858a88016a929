package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ag-weekly/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, rank, and write the weekly pickup PDF",
	Long: `Run executes one weekly cycle: fetch the newest submissions, keep those
within the lookback window, score them against the profile, and write
the pickup PDF listing every result above the threshold. A summary with
the result count and output path is printed to standard output.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("schedule", "", "cron expression; keep running on this schedule until interrupted")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	return executeCycle(cmd, pipeline.Options{})
}

// executeCycle runs one pipeline cycle, or keeps running on a cron
// schedule when --schedule is set.
func executeCycle(cmd *cobra.Command, opts pipeline.Options, extraRequired ...string) error {
	cfg, err := loadConfig(extraRequired...)
	if err != nil {
		return err
	}

	schedule, _ := cmd.Flags().GetString("schedule")
	if schedule != "" {
		return runOnSchedule(schedule, cfg, opts)
	}

	summary, err := pipeline.New(cfg, os.Stderr).Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return summary.Print(os.Stdout)
}
