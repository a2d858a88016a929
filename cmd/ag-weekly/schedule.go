package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/pdiddy/ag-weekly/internal/pipeline"
	"github.com/pdiddy/ag-weekly/internal/report"
	"github.com/pdiddy/ag-weekly/pkg/types"
)

// runOnSchedule executes the pipeline on a cron schedule until SIGINT
// or SIGTERM. The schedule is evaluated in fixed UTC+9, matching the
// date stamp of the output, so "0 9 * * 4" is Thursday 09:00 JST on
// any host.
func runOnSchedule(schedule string, cfg *types.Config, opts pipeline.Options) error {
	c := cron.New(cron.WithLocation(report.JST))
	_, err := c.AddFunc(schedule, func() {
		summary, err := pipeline.New(cfg, os.Stderr).Run(context.Background(), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
			return
		}
		summary.Print(os.Stdout)
	})
	if err != nil {
		return fmt.Errorf("parsing schedule %q: %w", schedule, err)
	}

	c.Start()
	defer c.Stop()
	fmt.Fprintf(os.Stderr, "scheduled %q, waiting (Ctrl-C to stop)\n", schedule)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Fprintln(os.Stderr, "shutting down")
	return nil
}
