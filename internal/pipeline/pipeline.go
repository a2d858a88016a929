// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires one weekly cycle end to end: fetch the feed,
// filter to the lookback window, score and rank, render the document,
// and report a summary.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/ag-weekly/internal/feed"
	"github.com/pdiddy/ag-weekly/internal/httputil"
	"github.com/pdiddy/ag-weekly/internal/report"
	"github.com/pdiddy/ag-weekly/internal/score"
	"github.com/pdiddy/ag-weekly/internal/theorem"
	"github.com/pdiddy/ag-weekly/pkg/types"
)

const (
	feedTimeout     = 60 * time.Second
	downloadTimeout = 120 * time.Second
	extractDelay    = 3 * time.Second
)

// Summary is the structured run result printed to standard output.
type Summary struct {
	ListedCount int    `json:"listed_count"`
	PDF         string `json:"pdf"`
}

// Options selects the report mode and the run clock.
type Options struct {
	// Theorems renders the detailed digest with theorem excerpts
	// instead of the pickup list.
	Theorems bool

	// Now overrides the run clock for the lookback window and the
	// output date stamp. Zero means time.Now.
	Now time.Time
}

// Pipeline holds the clients of one run. New builds the production
// wiring; tests assemble the struct directly.
type Pipeline struct {
	Cfg       *types.Config
	Feed      *feed.Client
	Extractor *theorem.Extractor
	Out       io.Writer
}

// New builds a pipeline for cfg. Progress lines go to w; the summary
// is returned, not printed.
func New(cfg *types.Config, w io.Writer) *Pipeline {
	ua := cfg.Arxiv.UserAgent()
	return &Pipeline{
		Cfg:  cfg,
		Feed: &feed.Client{HTTP: httputil.NewClient(feedTimeout, ua)},
		Extractor: &theorem.Extractor{
			HTTP:  httputil.NewClient(downloadTimeout, ua),
			Delay: extractDelay,
		},
		Out: w,
	}
}

// Run executes one cycle and writes the document. The returned summary
// carries the number of results above threshold and the output path.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Summary, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	results, err := p.rank(ctx, now)
	if err != nil {
		return Summary{}, err
	}

	cfg := p.Cfg
	title := report.DocumentTitle(cfg.Arxiv.Category, now)
	path := report.OutputPath(cfg.Output.Dir, cfg.Output.FilenamePrefix, now)

	if opts.Theorems {
		detailed, others := splitDetails(results, cfg.Limits.MaxDetails, cfg.Output.IncludeOthersTitles)
		excerpts := p.Extractor.ExtractAll(ctx, detailed, p.Out)
		if err := report.BuildDetailed(path, title, detailed, excerpts, others, cfg.Output.FontFile); err != nil {
			return Summary{}, err
		}
	} else {
		if err := report.BuildPickup(path, title, results, cfg.Output.FontFile); err != nil {
			return Summary{}, err
		}
	}
	return Summary{ListedCount: len(results), PDF: path}, nil
}

// Preview fetches and ranks without writing a document.
func (p *Pipeline) Preview(ctx context.Context) ([]types.Result, error) {
	return p.rank(ctx, time.Now())
}

// rank fetches the feed and returns the scored picks in render order.
func (p *Pipeline) rank(ctx context.Context, now time.Time) ([]types.Result, error) {
	cfg := p.Cfg
	entries, err := p.Feed.Fetch(ctx, cfg.Arxiv.Category, cfg.Limits.MaxFetch)
	if err != nil {
		return nil, err
	}
	recent := feed.Recent(entries, cfg.Limits.LookbackDays, now)
	results := score.Rank(recent, cfg.Profile, cfg.Scoring)
	fmt.Fprintf(p.Out, "fetched %d entries, %d within %d days, %d above threshold\n",
		len(entries), len(recent), cfg.Limits.LookbackDays, len(results))
	return results, nil
}

// splitDetails caps the detailed section at maxDetails and routes the
// remainder to the title-only overflow when includeOthers is set.
func splitDetails(results []types.Result, maxDetails int, includeOthers bool) (detailed, others []types.Result) {
	if maxDetails < 0 {
		maxDetails = 0
	}
	if len(results) <= maxDetails {
		return results, nil
	}
	detailed = results[:maxDetails]
	if includeOthers {
		others = results[maxDetails:]
	}
	return detailed, others
}
