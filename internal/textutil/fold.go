// Package textutil holds the accent-insensitive matching helpers shared by the
// rule and framework packages.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining marks, so "Synthèse" and "SYNTHESE"
// compare equal. Ligatures such as "œ" are left as is. Casers are stateful, so
// one is built per call.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Lower(language.French).String(out)
}

// CountOccurrences counts non-overlapping occurrences of needle in haystack
// after folding both.
func CountOccurrences(haystack, needle string) int {
	n := Fold(needle)
	if n == "" {
		return 0
	}
	return strings.Count(Fold(haystack), n)
}

// ContainsFold reports whether needle occurs in haystack, ignoring case and accents.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Words splits on Unicode whitespace.
func Words(s string) []string {
	return strings.Fields(s)
}
