// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"sort"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// Rank scores every entry and returns those at or above the threshold,
// ordered by descending score. The sort is stable: entries with equal
// scores keep feed order, which is already submission date descending, so
// no secondary key is applied.
func Rank(entries []types.Entry, profile types.ProfileConfig, weights types.ScoringConfig) []types.Result {
	var picked []types.Result
	for _, e := range entries {
		if s := Score(e, profile, weights); s >= weights.Threshold {
			picked = append(picked, types.Result{Entry: e, Score: s})
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Score > picked[j].Score
	})
	return picked
}
