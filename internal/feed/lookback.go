// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"time"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// Recent returns the entries whose newest timestamp falls within the
// trailing window of days, measured from now. Input order is preserved.
func Recent(entries []types.Entry, days int, now time.Time) []types.Entry {
	var recent []types.Entry
	for _, e := range entries {
		if withinLookback(e, days, now) {
			recent = append(recent, e)
		}
	}
	return recent
}

// withinLookback reports whether the entry's newest parseable timestamp
// (updated, falling back to published) is at most days whole days old.
// The age truncates to whole days, so an entry exactly days old is still
// recent. Entries with no parseable timestamp are kept: a malformed date
// must never hide an article.
func withinLookback(e types.Entry, days int, now time.Time) bool {
	var newest time.Time
	for _, s := range []string{e.Updated, e.Published} {
		if t, err := time.Parse(time.RFC3339, s); err == nil && t.After(newest) {
			newest = t
		}
	}
	if newest.IsZero() {
		return true
	}
	age := int(now.Sub(newest).Hours() / 24)
	return age <= days
}
