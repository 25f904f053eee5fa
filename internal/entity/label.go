package entity

import "fmt"

// ShippingLabel is one page of a label document judged to be an address
// label. Zip is always non-empty; a page without a parseable postal code is
// not a label.
type ShippingLabel struct {
	LabelID       string `json:"label_id"`
	RecipientName string `json:"recipient_name"`
	AddressLine1  string `json:"address_line1"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	DocIndex      int    `json:"doc_index"`
	DocName       string `json:"doc_name"`
	PageIndex     int    `json:"page_index"`
}

// LabelID derives the stable identifier for a label page. Indexes are
// zero-based; the identifier is unique across all uploaded label documents.
func LabelID(docIndex, pageIndex int) string {
	return fmt.Sprintf("label_%d_page_%d", docIndex+1, pageIndex+1)
}
