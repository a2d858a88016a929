// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the ag-weekly pipeline:
// feed entries, ranked results, and the configuration sections.
package types

// Entry is one normalized feed item (article metadata). Entries flow linearly
// through filter, scoring, and rendering; nothing mutates them after parse.
type Entry struct {
	// ID is the opaque stable identifier from the source feed.
	ID string `json:"id" yaml:"id"`

	// Title and Summary are trimmed of surrounding whitespace at parse time.
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists raw author names in source order, which is display order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published and Updated carry the feed's ISO-8601 timestamps verbatim.
	// They stay strings so a malformed value can fail open in the lookback
	// filter instead of dying at parse time.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// Categories lists the subject tags; order is irrelevant for matching
	// and repeats are allowed.
	Categories []string `json:"categories" yaml:"categories"`

	// AbsURL is the canonical abstract page (same as ID in practice).
	AbsURL string `json:"abs_url" yaml:"abs_url"`

	// PDFURL is the full-text document link; empty when the feed carried
	// none, in which case excerpt extraction is skipped.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// Result is an Entry with its computed relevance score. Results exist only
// between ranking and rendering; no run persists them.
type Result struct {
	Entry `yaml:",inline"`

	Score float64 `json:"score" yaml:"score"`
}
