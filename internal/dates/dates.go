// Package dates resolves loosely formatted order dates into YYYY-MM-DD.
package dates

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/okempf/boardbatch/internal/textutil"
)

// Known explicit layouts, tried in order. The first matches the usual
// marketplace form "Sat, Nov 15, 2025".
var layouts = []string{
	"Mon, Jan 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// Resolve parses raw into a canonical YYYY-MM-DD string. Explicit layouts are
// tried first, then a general natural-language parse. On total failure the
// raw string comes back unchanged; callers display it as-is.
func Resolve(raw string) string {
	raw = textutil.SafeString(raw)
	if raw == "" {
		return ""
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.Format("2006-01-02")
	}
	return raw
}
