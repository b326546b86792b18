// Package fold normalizes text for case- and accent-insensitive matching.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String decomposes s (NFD), strips combining marks and case-folds the result,
// so "Crème Brûlée" and "creme brulee" fold to the same string.
func String(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return cases.Fold().String(result)
}

// Contains reports whether needle occurs in haystack after both are folded.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(String(haystack), String(needle))
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
