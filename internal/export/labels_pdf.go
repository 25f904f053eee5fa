package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/okempf/boardbatch/internal/entity"
	"github.com/okempf/boardbatch/internal/textutil"
)

// 4×6 stock, landscape: 6in wide, 4in tall.
const (
	labelPageW = 6.0
	labelPageH = 4.0
	labelEdge  = 0.3
)

func newLabelPDF() *fpdf.Fpdf {
	return fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "in",
		Size:    fpdf.SizeType{Wd: labelPageW, Ht: labelPageH},
	})
}

// ManufacturingLabelsPDF renders one 4×6 page per expanded row: order id and
// quantity, buyer and date, a boxed design/note area, and the engraving
// letter when present. Returns nil for an empty table.
func ManufacturingLabelsPDF(expanded []entity.OrderRecord) ([]byte, error) {
	if len(expanded) == 0 {
		return nil, nil
	}

	pdf := newLabelPDF()
	pdf.SetAutoPageBreak(false, 0)
	left := labelEdge
	right := labelPageW - labelEdge

	for _, rec := range expanded {
		pdf.AddPage()
		y := labelEdge + 0.15

		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(left, y, fmt.Sprintf("Order ID: %s", rec.OrderID))
		qty := fmt.Sprintf("Qty: %d", rec.Quantity)
		pdf.Text(right-pdf.GetStringWidth(qty), y, qty)
		y += 0.28

		pdf.SetFont("Helvetica", "", 13)
		pdf.Text(left, y, fmt.Sprintf("Buyer: %s", rec.BuyerName))
		date := fmt.Sprintf("Date: %s", rec.OrderDate)
		pdf.Text(right-pdf.GetStringWidth(date), y, date)
		y += 0.32

		boxH := 0.9
		pdf.SetLineWidth(0.02)
		pdf.Rect(left, y, right-left, boxH, "D")

		design := ""
		if rec.DesignNumber != nil {
			design = fmt.Sprintf("%d", *rec.DesignNumber)
		}
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(left+0.15, y+0.30, fmt.Sprintf("Design: %s", design))
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(left+0.15, y+0.65, fmt.Sprintf("Note: %s", rec.CustomizationNote))
		y += boxH + 0.4

		if letter := textutil.SafeString(rec.EngravingLetter); letter != "" {
			pdf.SetFont("Helvetica", "B", 28)
			pdf.Text(left, y, fmt.Sprintf("Letter: %s", letter))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render labels: %w", err)
	}
	return buf.Bytes(), nil
}

// GiftMessageLabelsPDF renders one bordered 4×6 page per non-empty gift
// message, text word-wrapped and centered. Returns nil when nothing has a
// message.
func GiftMessageLabelsPDF(expanded []entity.OrderRecord) ([]byte, error) {
	var messages []string
	for _, rec := range expanded {
		if m := textutil.SafeString(rec.GiftMessage); m != "" {
			messages = append(messages, m)
		}
	}
	if len(messages) == 0 {
		return nil, nil
	}

	pdf := newLabelPDF()
	pdf.SetAutoPageBreak(false, 0)

	for _, message := range messages {
		pdf.AddPage()

		pdf.SetLineWidth(0.03)
		pdf.Rect(0.4, 0.4, labelPageW-0.8, labelPageH-0.8, "D")

		pdf.SetFont("Times", "BI", 18)
		lines := wrapWords(pdf, message, labelPageW-1.2)

		lineH := 0.30
		y := (labelPageH-float64(len(lines))*lineH)/2 + lineH
		for _, line := range lines {
			pdf.Text((labelPageW-pdf.GetStringWidth(line))/2, y, line)
			y += lineH
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render gift labels: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapWords breaks a message into lines that fit maxWidth under the current
// font.
func wrapWords(pdf *fpdf.Fpdf, message string, maxWidth float64) []string {
	var lines []string
	var current []string
	for _, word := range strings.Fields(message) {
		test := strings.Join(append(current, word), " ")
		if pdf.GetStringWidth(test) < maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
