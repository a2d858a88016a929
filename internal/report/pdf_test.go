// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// pageCount reopens the written file and counts its pages, after first
// checking the PDF signature.
func pageCount(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF signature")
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		t.Fatalf("reopening output: %v", err)
	}
	defer f.Close()
	return r.NumPage()
}

func asciiResults(n int) []types.Result {
	results := make([]types.Result, n)
	for i := range results {
		results[i] = types.Result{
			Entry: types.Entry{
				Title:   fmt.Sprintf("Paper number %d", i+1),
				Authors: []string{"Robin Hartshorne", "J. Smith"},
				AbsURL:  fmt.Sprintf("http://arxiv.org/abs/2608.%05d", i+1),
			},
			Score: 1,
		}
	}
	return results
}

func TestBuildPickupWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickup.pdf")
	if err := BuildPickup(path, "Weekly Pickup (2026-03-14)", asciiResults(2), ""); err != nil {
		t.Fatalf("BuildPickup() error: %v", err)
	}
	if got := pageCount(t, path); got != 1 {
		t.Errorf("page count = %d, want 1", got)
	}
}

func TestBuildPickupEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickup.pdf")
	if err := BuildPickup(path, "Weekly Pickup (2026-03-14)", nil, ""); err != nil {
		t.Fatalf("BuildPickup() error: %v", err)
	}
	if got := pageCount(t, path); got != 1 {
		t.Errorf("page count = %d, want 1", got)
	}
}

func TestBuildPickupPaginates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickup.pdf")
	if err := BuildPickup(path, "Weekly Pickup (2026-03-14)", asciiResults(40), ""); err != nil {
		t.Fatalf("BuildPickup() error: %v", err)
	}
	if got := pageCount(t, path); got < 2 {
		t.Errorf("page count = %d, want at least 2", got)
	}
}

func TestBuildPickupCreatesOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "pickup.pdf")
	if err := BuildPickup(path, "Weekly Pickup (2026-03-14)", asciiResults(1), ""); err != nil {
		t.Fatalf("BuildPickup() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestBuildDetailedWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.pdf")
	detailed := asciiResults(2)
	excerpts := []string{"Theorem 1: everything holds.", ""}
	others := asciiResults(3)

	if err := BuildDetailed(path, "Weekly Digest (2026-03-14)", detailed, excerpts, others, ""); err != nil {
		t.Fatalf("BuildDetailed() error: %v", err)
	}
	if got := pageCount(t, path); got != 1 {
		t.Errorf("page count = %d, want 1", got)
	}
}

func TestBuildDetailedEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.pdf")
	if err := BuildDetailed(path, "Weekly Digest (2026-03-14)", nil, nil, nil, ""); err != nil {
		t.Fatalf("BuildDetailed() error: %v", err)
	}
	if got := pageCount(t, path); got != 1 {
		t.Errorf("page count = %d, want 1", got)
	}
}

func TestBuildDetailedPaginatesOverflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.pdf")
	if err := BuildDetailed(path, "Weekly Digest (2026-03-14)", asciiResults(5), make([]string, 5), asciiResults(60), ""); err != nil {
		t.Fatalf("BuildDetailed() error: %v", err)
	}
	if got := pageCount(t, path); got < 2 {
		t.Errorf("page count = %d, want at least 2", got)
	}
}

// --- wrapping ---

func TestWrapRunes(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  []string
	}{
		{"fits on one line", "hello world", 11, []string{"hello world"}},
		{"breaks at word boundary", "hello world", 10, []string{"hello", "world"}},
		{"long word fills then splits", "aaa bbbbbbbbbb", 5, []string{"aaa b", "bbbbb", "bbbb"}},
		{"word moved to fresh line", "hello worldworld", 10, []string{"hello", "worldworld"}},
		{"counts runes not bytes", "日本語のテスト", 3, []string{"日本語", "のテス", "ト"}},
		{"collapses whitespace", "a\t b\n c", 10, []string{"a b c"}},
		{"empty input", "", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapRunes(tt.s, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapRunes(%q, %d) = %v, want %v", tt.s, tt.width, got, tt.want)
			}
		})
	}
}
