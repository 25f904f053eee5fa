package parse

import (
	"regexp"

	"github.com/okempf/boardbatch/internal/textutil"
)

var (
	// "City, ST 12345" / "City, ST 12345-6789"
	reCSZComma = regexp.MustCompile(`^(.*?),\s*([A-Z]{2})\s+(\d{5}(?:-\d{4})?)\b`)
	// "City ST 12345" fallback without the comma
	reCSZSpace = regexp.MustCompile(`^(.*?)\s+([A-Z]{2})\s+(\d{5}(?:-\d{4})?)\b`)

	// reZip detects whether a line carries a postal code at all.
	reZip = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
)

// CityStateZip parses one "City, ST 12345" line. The comma form is tried
// first, then the space-delimited form. Returns three empty strings when the
// line has no usable city/state/zip.
func CityStateZip(line string) (city, state, zip string) {
	line = textutil.SafeString(line)

	m := reCSZComma.FindStringSubmatch(line)
	if m == nil {
		m = reCSZSpace.FindStringSubmatch(line)
	}
	if m == nil {
		return "", "", ""
	}
	return textutil.SafeString(m[1]), textutil.SafeString(m[2]), textutil.SafeString(m[3])
}

// HasZip reports whether the line contains a 5-digit (or 5+4) postal code.
func HasZip(line string) bool {
	return reZip.MatchString(line)
}
