// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"testing"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// titleProfile scores one point per matched title keyword, which makes
// the expected scores easy to read off in the tests below.
func titleProfile(terms ...string) types.ProfileConfig {
	p := types.ProfileConfig{}
	for _, term := range terms {
		p.Keywords = append(p.Keywords, types.WeightedTerm{Term: term, Weight: 1})
	}
	return p
}

func TestRankFiltersAndSorts(t *testing.T) {
	entries := []types.Entry{
		{ID: "low", Title: "nothing relevant"},
		{ID: "high", Title: "alpha alpha beta"}, // alpha + beta = 2
		{ID: "mid", Title: "alpha only"},        // alpha = 1
	}
	profile := titleProfile("alpha", "beta")
	weights := types.ScoringConfig{TitleWeight: 1, Threshold: 1}

	got := Rank(entries, profile, weights)

	if len(got) != 2 {
		t.Fatalf("Rank() returned %d results, want 2", len(got))
	}
	if got[0].ID != "high" || got[1].ID != "mid" {
		t.Errorf("Rank() order = [%s %s], want [high mid]", got[0].ID, got[1].ID)
	}
	if got[0].Score != 2 || got[1].Score != 1 {
		t.Errorf("Rank() scores = [%v %v], want [2 1]", got[0].Score, got[1].Score)
	}
}

func TestRankThresholdInclusive(t *testing.T) {
	entries := []types.Entry{{ID: "edge", Title: "alpha"}}
	weights := types.ScoringConfig{TitleWeight: 1, Threshold: 1}

	got := Rank(entries, titleProfile("alpha"), weights)

	if len(got) != 1 || got[0].ID != "edge" {
		t.Errorf("Rank() dropped an entry whose score equals the threshold")
	}
}

func TestRankStableOnTies(t *testing.T) {
	// The three single-keyword entries score the same; the feed order
	// must survive among them even though "top" jumps ahead.
	entries := []types.Entry{
		{ID: "first", Title: "alpha"},
		{ID: "second", Title: "alpha"},
		{ID: "third", Title: "alpha"},
		{ID: "top", Title: "alpha beta"},
	}
	weights := types.ScoringConfig{TitleWeight: 1, Threshold: 0}

	got := Rank(entries, titleProfile("alpha", "beta"), weights)

	want := []string{"top", "first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Rank() returned %d results, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Rank()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRankEmptyInput(t *testing.T) {
	got := Rank(nil, titleProfile("alpha"), types.ScoringConfig{Threshold: 0})
	if len(got) != 0 {
		t.Errorf("Rank(nil) returned %d results, want 0", len(got))
	}
}

func TestRankNegativeThresholdKeepsPenalized(t *testing.T) {
	entries := []types.Entry{{ID: "penalized", Title: "survey of results"}}
	profile := types.ProfileConfig{Exclude: []string{"survey"}}
	weights := types.ScoringConfig{Threshold: -5}

	got := Rank(entries, profile, weights)

	if len(got) != 1 {
		t.Fatalf("Rank() returned %d results, want 1", len(got))
	}
	if got[0].Score != -2 {
		t.Errorf("Rank() score = %v, want -2", got[0].Score)
	}
}
