// Package ingest reads uploaded PDF documents fully into memory and
// extracts a plain-text stream per page. One unreadable document is skipped
// and never aborts the batch.
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPages pulls the plain text of every page of a PDF, in page order.
// Rows on a page are joined with newlines so the downstream line-oriented
// heuristics see one line per printed row.
func ExtractPages(content []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for n := 1; n <= numPages; n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single bad page degrades to empty text, like a blank scan.
			pages = append(pages, "")
			continue
		}

		var b strings.Builder
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
		pages = append(pages, Normalize(b.String()))
	}
	return pages, nil
}
