package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds a user-supplied name into the form used for lookups:
// NFKC normalized, control characters turned into spaces, surrounding whitespace trimmed
// and lowercased. Two names that differ only in case or padding map to the
// same key.
func NormalizeKey(s string) string {
	normed := norm.NFKC.String(s)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, normed)
	normed = strings.TrimSpace(normed)
	// cases.Caser keeps internal state, so a fresh one per call.
	return cases.Lower(language.Und).String(normed)
}

// SplitList splits a comma-separated list, trimming each entry and dropping
// empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
