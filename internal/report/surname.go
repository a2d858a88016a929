// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "strings"

// Surname reduces a raw author name to a surname. A "Last, First" name
// takes the part before the first comma; anything else takes the last
// whitespace-separated token. Periods and commas are stripped from the
// result, so initials-only input reduces to an empty string.
func Surname(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var last string
	if i := strings.Index(name, ","); i >= 0 {
		last = strings.TrimSpace(name[:i])
	} else {
		parts := strings.Fields(name)
		last = parts[len(parts)-1]
	}
	last = strings.ReplaceAll(last, ".", "")
	last = strings.ReplaceAll(last, ",", "")
	return last
}

// Surnames maps author names to surnames, dropping names that reduce
// to an empty string. Order and duplicates are preserved.
func Surnames(names []string) []string {
	var out []string
	for _, n := range names {
		if s := Surname(n); s != "" {
			out = append(out, s)
		}
	}
	return out
}
