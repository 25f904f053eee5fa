package parse

import (
	"strings"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/textutil"
)

// Phrasings that all mean the utensil-engraving option.
var utensilVariants = []string{
	"board+utensils",
	"board + utensils",
	"board & utensils",
	"board and utensils",
	"board + cheese knife",
	"board+cheese knife",
	"board & knife",
	"board and knife",
}

// NormalizeBoardType classifies a raw order-option string into one of the
// canonical board types. Rules are checked in priority order; an unknown
// value passes through verbatim so nothing is silently lost. Idempotent.
func NormalizeBoardType(raw string) string {
	raw = textutil.SafeString(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)

	if strings.Contains(lower, "no engraving") {
		return constants.BoardTypeNoEngraving
	}
	if strings.Contains(lower, "board only") && !strings.Contains(lower, "utensil") {
		return constants.BoardTypeBoardOnly
	}
	for _, k := range utensilVariants {
		if strings.Contains(lower, k) {
			return constants.BoardTypeUtensilsEngraving
		}
	}
	return raw
}
