// Package parse turns extracted document text into order and shipping-label
// records. Every field search is independent and degrades to a documented
// default; a missing field never fails a record.
package parse

import "regexp"

// Order segments are anchored on the marketplace order identifier,
// e.g. "Order ID: 123-4567890-1234567".
var reOrderAnchor = regexp.MustCompile(`Order ID:\s*\d{3}-\d{7}-\d{7}`)

// SplitSegments splits a document's full text into one chunk per order. Each
// chunk starts at an anchor occurrence and runs to the next one (or end of
// text). Text before the first anchor is boilerplate and is dropped. A
// document with no anchors yields nil.
func SplitSegments(fullText string) []string {
	locs := reOrderAnchor.FindAllStringIndex(fullText, -1)
	if len(locs) == 0 {
		return nil
	}

	segments := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(fullText)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segments = append(segments, fullText[loc[0]:end])
	}
	return segments
}
