// Package fuzzy decides whether two recipient names refer to the same
// person.
package fuzzy

import (
	"github.com/agext/levenshtein"

	"github.com/okempf/boardbatch/internal/textutil"
)

// DefaultThreshold is the minimum similarity ratio for two names to be
// treated as equal.
const DefaultThreshold = 0.8

var params = levenshtein.NewParams()

// Ratio returns the similarity of the two strings after normalization, in
// [0, 1]. Either side normalizing to empty yields 0.
func Ratio(a, b string) float64 {
	an := textutil.NormalizeForMatch(a)
	bn := textutil.NormalizeForMatch(b)
	if an == "" || bn == "" {
		return 0
	}
	return levenshtein.Similarity(an, bn, params)
}

// Equal reports whether a and b meet the threshold. Symmetric.
func Equal(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	r := Ratio(a, b)
	return r > 0 && r >= threshold
}
