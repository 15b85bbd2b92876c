package hclast

import (
	"github.com/agext/levenshtein"
)

// Suggest returns the candidate closest to given, or "" when none is close
// enough to be a plausible typo.
func Suggest(given string, candidates []string) string {
	best := ""
	bestDist := 3
	for _, candidate := range candidates {
		dist := levenshtein.Distance(given, candidate, nil)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

// DidYouMean formats a suggestion for a diagnostic detail, or returns "".
func DidYouMean(given string, candidates []string) string {
	if s := Suggest(given, candidates); s != "" {
		return " Did you mean \"" + s + "\"?"
	}
	return ""
}
