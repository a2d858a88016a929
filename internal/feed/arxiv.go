// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches arXiv Atom entries for one subject category and
// filters them to the recent lookback window.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// Client fetches entries from the arXiv Atom API.
type Client struct {
	HTTP *http.Client

	// BaseURL overrides the production endpoint when set; callers in
	// other packages use it to point Fetch at a test server.
	BaseURL string
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return arxivAPIBase
}

// Fetch issues one paginated query for the category, newest submissions
// first, and returns the parsed entries in feed order. A transport error or
// a non-200 status is fatal to the run: nothing downstream can proceed
// without entries.
func (c *Client) Fetch(ctx context.Context, category string, maxResults int) ([]types.Entry, error) {
	query := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		c.base(), url.QueryEscape("cat:"+category), maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	entries := make([]types.Entry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		entries = append(entries, e.toEntry())
	}
	return entries, nil
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Authors    []atomAuthor   `xml:"author"`
	Links      []atomLink     `xml:"link"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// toEntry normalizes one Atom entry: trimmed text fields, category terms,
// the abstract URL, and the resolved full-text link. Timestamps are carried
// verbatim; the lookback filter owns their parsing.
func (e atomEntry) toEntry() types.Entry {
	entry := types.Entry{
		ID:        e.ID,
		Title:     strings.TrimSpace(e.Title),
		Summary:   strings.TrimSpace(e.Summary),
		Published: e.Published,
		Updated:   e.Updated,
		AbsURL:    e.ID,
		PDFURL:    pdfLink(e.Links),
	}
	for _, a := range e.Authors {
		entry.Authors = append(entry.Authors, strings.TrimSpace(a.Name))
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			entry.Categories = append(entry.Categories, c.Term)
		}
	}
	return entry
}

// pdfLink picks the full-text link: the link titled "pdf" wins, then the
// first one typed application/pdf, else empty (extraction is skipped).
func pdfLink(links []atomLink) string {
	for _, l := range links {
		if l.Title == "pdf" {
			return l.Href
		}
	}
	for _, l := range links {
		if l.Type == "application/pdf" {
			return l.Href
		}
	}
	return ""
}
