package entity

import "strings"

// Document is one uploaded file after text extraction: the per-page plain
// text in page order. Extraction of text from the raw bytes happens in
// ingest; everything downstream works on Pages only.
type Document struct {
	Index int      `json:"index"`
	Name  string   `json:"name"`
	Pages []string `json:"-"`
}

// FullText joins all pages into one stream for order segmentation.
func (d *Document) FullText() string {
	return strings.Join(d.Pages, "\n")
}
