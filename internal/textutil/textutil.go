// Package textutil holds the low-level string helpers shared by the parsing
// and matching packages.
package textutil

import (
	"regexp"
	"strings"
)

var (
	reSpaces      = regexp.MustCompile(`\s+`)
	reNonFileSafe = regexp.MustCompile(`[^A-Za-z0-9_]+`)
	reNonAlnum    = regexp.MustCompile(`[^a-z0-9]`)
)

// SafeString trims surrounding whitespace and never panics on empty input.
func SafeString(s string) string {
	return strings.TrimSpace(s)
}

// CollapseSpaces replaces every run of whitespace with a single space and
// trims the result.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// FileFriendlyName converts free text into a safe filename fragment:
// whitespace becomes underscores, everything else non-alphanumeric is
// dropped.
func FileFriendlyName(s string) string {
	s = SafeString(s)
	s = reSpaces.ReplaceAllString(s, "_")
	return reNonFileSafe.ReplaceAllString(s, "")
}

// NormalizeForMatch lowercases and strips everything that is not a letter or
// digit. Used for address and name comparison.
func NormalizeForMatch(s string) string {
	s = strings.ToLower(SafeString(s))
	return reNonAlnum.ReplaceAllString(s, "")
}

// NonEmptyLines splits text into lines, trims each, and drops blanks.
func NonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FirstToken returns the first whitespace-delimited token, or "".
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
