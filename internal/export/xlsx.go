package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/okempf/boardbatch/internal/entity"
)

// OrdersXLSX returns an XLSX workbook (as bytes) for the pre-expansion order
// table, one row per line item.
func OrdersXLSX(orders []entity.OrderRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Buyer Name",
		"Ship To Name",
		"Address Line 1",
		"City",
		"State",
		"Zip",
		"Country",
		"Order ID",
		"Order Item ID",
		"Order Date",
		"Product Title",
		"SKU",
		"ASIN",
		"Quantity",
		"Board Type",
		"Design #",
		"Customization Note",
		"Engraving Letter",
		"Gift Note",
		"Gift Message",
		"Spelling Confirmation",
		"Label Status",
		"Matched Label",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r, rec := range orders {
		row := r + 2
		design := ""
		if rec.DesignNumber != nil {
			design = fmt.Sprintf("%d", *rec.DesignNumber)
		}
		values := []any{
			rec.BuyerName,
			rec.ShipToName,
			rec.AddressLine1,
			rec.City,
			rec.State,
			rec.Zip,
			rec.Country,
			rec.OrderID,
			rec.OrderItemID,
			rec.OrderDate,
			rec.ProductTitle,
			rec.SKU,
			rec.ASIN,
			rec.Quantity,
			rec.OrderOption,
			design,
			rec.CustomizationNote,
			rec.EngravingLetter,
			string(rec.GiftOption),
			rec.GiftMessage,
			rec.SpellingConfirm,
			string(rec.LabelStatus),
			rec.MatchedLabelID,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Drop the default sheet if it is not ours.
	if f.GetSheetName(0) != sheet {
		_ = f.DeleteSheet(f.GetSheetName(0))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
