// Package theorem downloads top-ranked papers and extracts a short
// excerpt of the main theorem statement from the PDF text layer.
package theorem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// Extractor fetches paper PDFs and locates theorem statements. Every
// failure mode yields an empty excerpt; extraction never stops a run.
type Extractor struct {
	HTTP *http.Client

	// Delay is slept after every extraction attempt to stay polite to
	// the document host. The loop is sequential on purpose.
	Delay time.Duration

	// TempPath is the transient download location, reused across
	// iterations. Concurrent runs must not share it. Empty selects a
	// fixed name under the system temp directory.
	TempPath string
}

func (x *Extractor) tempPath() string {
	if x.TempPath != "" {
		return x.TempPath
	}
	return filepath.Join(os.TempDir(), "ag-weekly-paper.pdf")
}

// Extract downloads the PDF at pdfURL and returns the theorem excerpt,
// or an empty string if the download, parse, or pattern search fails.
// The transient file is removed regardless of outcome.
func (x *Extractor) Extract(ctx context.Context, pdfURL string) string {
	if pdfURL == "" {
		return ""
	}
	path := x.tempPath()
	defer os.Remove(path)

	if err := x.download(ctx, pdfURL, path); err != nil {
		return ""
	}
	text, err := plainText(path)
	if err != nil {
		return ""
	}
	return Excerpt(text)
}

// ExtractAll runs Extract over results in order, printing per-item
// progress to w. Excerpts are returned in the same order as results.
func (x *Extractor) ExtractAll(ctx context.Context, results []types.Result, w io.Writer) []string {
	excerpts := make([]string, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "extracting: %s\n", r.Title)
		excerpts[i] = x.Extract(ctx, r.PDFURL)
		if x.Delay > 0 {
			time.Sleep(x.Delay)
		}
	}
	return excerpts
}

func (x *Extractor) download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := x.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating transient file: %w", err)
	}
	_, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil {
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing transient file: %w", closeErr)
	}
	return nil
}

// plainText reads the text layer of the PDF at path. The parser panics
// on some malformed files, so the recover converts that into an error.
func plainText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing PDF: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	return buf.String(), nil
}
