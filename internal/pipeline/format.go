// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// Print writes the summary as indented JSON to w.
func (s Summary) Print(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// FormatTable writes ranked results as a human-readable table to w.
func FormatTable(results []types.Result, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results above threshold.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-6s  %s\n",
		"Rank", "Title", "Authors", "Score", "Category")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for i, r := range results {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		category := ""
		if len(r.Categories) > 0 {
			category = r.Categories[0]
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-6.2f  %s\n",
			i+1, title, formatAuthors(r.Authors), r.Score, category)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes ranked results as indented JSON to w.
func FormatJSON(results []types.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
