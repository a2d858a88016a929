// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the weekly pickup document and its
// supporting name and path helpers.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// Layout distances are in points, converted from the millimetre
// margins of the printed layout.
const (
	ptPerMM     = 72.0 / 25.4
	pageMargin  = 20 * ptPerMM
	bottomLimit = 40 * ptPerMM
)

const (
	noResultsMessage = "今週のピックアップは 0件 でした。"
	notFoundMessage  = "主定理: 見つかりませんでした"
	excerptLabel     = "主定理: "
	authorsLabel     = "著者: "
	urlLabel         = "URL: "
	othersHeading    = "その他のタイトル:"
)

type color struct{ r, g, b int }

var (
	black = color{0, 0, 0}
	// titleTint colors the per-entry title lines in the pickup list.
	titleTint = color{232, 180, 180}
)

// doc tracks a vertical cursor on an A4 page. The cursor grows
// downward and a page break resets it to the top margin.
type doc struct {
	pdf   *fpdf.Fpdf
	font  string
	pageH float64
	y     float64
}

// newDoc opens a portrait A4 document. When fontFile names a TTF it is
// registered for the full Unicode range; otherwise the built-in
// Helvetica is used, which covers Latin text only. Font and drawing
// errors surface later, from save.
func newDoc(title, fontFile string) *doc {
	p := fpdf.New("P", "pt", "A4", "")
	font := "helvetica"
	if fontFile != "" {
		font = "cjk"
		p.AddUTF8Font(font, "", fontFile)
	}
	p.SetTitle(title, true)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	_, pageH := p.GetPageSize()
	return &doc{pdf: p, font: font, pageH: pageH, y: pageMargin}
}

// writeWrapped draws s wrapped at wrap runes, advancing the cursor by
// leading per line. The text color is restored to black afterward.
func (d *doc) writeWrapped(s string, size, leading float64, wrap int, c color) {
	d.pdf.SetFont(d.font, "", size)
	d.pdf.SetTextColor(c.r, c.g, c.b)
	for _, line := range wrapRunes(s, wrap) {
		d.pdf.Text(pageMargin, d.y, line)
		d.y += leading
	}
	d.pdf.SetTextColor(black.r, black.g, black.b)
}

// writeBody draws s in the default body style.
func (d *doc) writeBody(s string) {
	d.writeWrapped(s, 12, 16, 84, black)
}

// writeHeading draws the document title.
func (d *doc) writeHeading(title string) {
	d.writeWrapped(title, 16, 20, 60, black)
	d.y += 8
}

// breakPage starts a new page once the cursor has crossed the bottom
// threshold.
func (d *doc) breakPage() {
	if d.y > d.pageH-bottomLimit {
		d.pdf.AddPage()
		d.y = pageMargin
	}
}

func (d *doc) save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// BuildPickup writes the weekly pickup list to path. Each result is
// rendered as an indexed tinted title, the surname list, and the
// abstract URL. An empty result list still produces a valid document
// with a fixed message.
func BuildPickup(path, title string, results []types.Result, fontFile string) error {
	d := newDoc(title, fontFile)
	d.writeHeading(title)

	if len(results) == 0 {
		d.writeBody(noResultsMessage)
		return d.save(path)
	}

	for i, r := range results {
		d.writeWrapped(fmt.Sprintf("[%d] %s", i+1, r.Title), 13, 18, 70, titleTint)
		d.y += 2
		d.writeBody(authorsLabel + strings.Join(Surnames(r.Authors), ", "))
		d.writeBody(urlLabel + r.AbsURL)
		d.y += 8
		d.breakPage()
	}
	return d.save(path)
}

// BuildDetailed writes the theorem digest to path. The detailed
// results carry full author names, the abstract URL, and the extracted
// excerpt aligned by index (an empty excerpt renders the fixed
// not-found message). The others list is rendered title-only under its
// own heading with numbering continuing from the detailed section;
// pass nil to omit it.
func BuildDetailed(path, title string, detailed []types.Result, excerpts []string, others []types.Result, fontFile string) error {
	d := newDoc(title, fontFile)
	d.writeHeading(title)

	if len(detailed) == 0 && len(others) == 0 {
		d.writeBody(noResultsMessage)
		return d.save(path)
	}

	for i, r := range detailed {
		d.writeWrapped(fmt.Sprintf("[%d] %s", i+1, r.Title), 13, 18, 70, black)
		d.y += 2
		d.writeBody(authorsLabel + strings.Join(r.Authors, ", "))
		d.writeBody(urlLabel + r.AbsURL)
		line := notFoundMessage
		if i < len(excerpts) && excerpts[i] != "" {
			line = excerptLabel + excerpts[i]
		}
		d.writeBody(line)
		d.y += 8
		d.breakPage()
	}

	if len(others) > 0 {
		d.writeWrapped(othersHeading, 13, 18, 70, black)
		d.y += 2
		for j, r := range others {
			d.writeBody(fmt.Sprintf("[%d] %s", len(detailed)+j+1, r.Title))
			d.breakPage()
		}
	}
	return d.save(path)
}

// wrapRunes greedily wraps s into lines of at most width runes,
// breaking on whitespace and splitting words longer than the remaining
// room. Rune count stands in for font metrics so the layout stays
// deterministic across fonts.
func wrapRunes(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line string
	lineLen := 0
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		for len(runes) > 0 {
			space := 0
			if lineLen > 0 {
				space = 1
			}
			room := width - lineLen - space
			if len(runes) <= room {
				if space == 1 {
					line += " "
				}
				line += string(runes)
				lineLen += space + len(runes)
				break
			}
			if len(runes) <= width {
				// Fits on a fresh line.
				lines = append(lines, line)
				line, lineLen = "", 0
				continue
			}
			// Longer than a full line: split to fill.
			if room > 0 {
				if space == 1 {
					line += " "
				}
				line += string(runes[:room])
				runes = runes[room:]
			}
			lines = append(lines, line)
			line, lineLen = "", 0
		}
	}
	if lineLen > 0 {
		lines = append(lines, line)
	}
	return lines
}
