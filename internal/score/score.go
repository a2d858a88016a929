// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score rates feed entries against the configured interest profile
// and ranks the qualifying ones.
package score

import (
	"strings"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// excludePenalty is subtracted once per matching exclude term, regardless of
// how often the term occurs.
const excludePenalty = 2.0

// Score computes the relevance of one entry under the profile. It is a pure
// function: the same entry and profile always produce the same value.
//
// Keyword terms match the title and the abstract independently, so one term
// can contribute twice. Priority authors match as substrings of the joined
// author list; a short name can match inside a longer one, which is accepted
// because profiles are written surname-only. Category terms match the joined
// tag list. Every match is a case-insensitive substring test.
func Score(e types.Entry, profile types.ProfileConfig, weights types.ScoringConfig) float64 {
	title := strings.ToLower(e.Title)
	abstract := strings.ToLower(e.Summary)
	authors := strings.ToLower(strings.Join(e.Authors, " "))
	cats := strings.ToLower(strings.Join(e.Categories, " "))

	s := 0.0
	for _, kw := range profile.Keywords {
		term := strings.ToLower(kw.Term)
		if strings.Contains(title, term) {
			s += kw.Weight * weights.TitleWeight
		}
		if strings.Contains(abstract, term) {
			s += kw.Weight * weights.AbstractWeight
		}
	}
	for _, au := range profile.AuthorsPriority {
		if strings.Contains(authors, strings.ToLower(au.Name)) {
			s += au.Weight * weights.AuthorWeight
		}
	}
	for _, ms := range profile.MSCTerms {
		if strings.Contains(cats, strings.ToLower(ms.Term)) {
			s += ms.Weight * weights.CategoryWeight
		}
	}
	for _, bad := range profile.Exclude {
		term := strings.ToLower(bad)
		if strings.Contains(title, term) || strings.Contains(abstract, term) {
			s -= excludePenalty
		}
	}
	return s
}
