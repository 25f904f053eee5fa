package parse

import (
	"github.com/okempf/boardbatch/internal/entity"
	"github.com/okempf/boardbatch/internal/textutil"
)

// maxLabelScanLines bounds the postal-code scan on a label page.
const maxLabelScanLines = 10

// ExtractLabel parses one page of a shipping-label document. Pages with
// fewer than three non-empty lines, or with no parseable postal code in the
// first ten, are not labels (manifest and packing-slip pages fail here) and
// return nil.
func ExtractLabel(pageText string, docIndex int, docName string, pageIndex int) *entity.ShippingLabel {
	lines := textutil.NonEmptyLines(pageText)
	if len(lines) < 3 {
		return nil
	}

	scan := lines
	if len(scan) > maxLabelScanLines {
		scan = scan[:maxLabelScanLines]
	}
	cszLine := ""
	for _, l := range scan {
		if HasZip(l) {
			cszLine = l
			break
		}
	}

	city, state, zip := CityStateZip(cszLine)
	if zip == "" {
		return nil
	}

	return &entity.ShippingLabel{
		LabelID:       entity.LabelID(docIndex, pageIndex),
		RecipientName: lines[0],
		AddressLine1:  lines[1],
		City:          city,
		State:         state,
		Zip:           zip,
		DocIndex:      docIndex,
		DocName:       docName,
		PageIndex:     pageIndex,
	}
}

// ExtractLabels runs ExtractLabel over every page of a document, keeping
// page order.
func ExtractLabels(doc *entity.Document) []entity.ShippingLabel {
	var out []entity.ShippingLabel
	for i, page := range doc.Pages {
		if lab := ExtractLabel(page, doc.Index, doc.Name, i); lab != nil {
			out = append(out, *lab)
		}
	}
	return out
}
