package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/okempf/boardbatch/internal/entity"
	"github.com/okempf/boardbatch/internal/textutil"
)

// designCSVHeader is the LightBurn import column set.
var designCSVHeader = []string{
	"csvbuyer_name",
	"design",
	"line1",
	"line2",
	"line3",
	"initial",
	"order_id",
	"order_item_id",
	"board_type",
	"gift_note",
	"gift_message",
}

// DesignCSVs builds one CSV per design number from the expanded table. Rows
// without a design number are left out; they have nothing to engrave from a
// design template.
func DesignCSVs(expanded []entity.OrderRecord) (map[int][]byte, error) {
	byDesign := make(map[int][]entity.OrderRecord)
	for _, rec := range expanded {
		if rec.DesignNumber == nil {
			continue
		}
		byDesign[*rec.DesignNumber] = append(byDesign[*rec.DesignNumber], rec)
	}

	out := make(map[int][]byte, len(byDesign))
	for design, rows := range byDesign {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(designCSVHeader); err != nil {
			return nil, fmt.Errorf("design %d: %w", design, err)
		}
		for _, rec := range rows {
			name := textutil.FileFriendlyName(rec.BuyerName + " " + rec.ShipToName)
			row := []string{
				name,
				strconv.Itoa(design),
				textutil.SafeString(rec.CustomizationNote),
				"",
				"",
				textutil.SafeString(rec.EngravingLetter),
				rec.OrderID,
				rec.OrderItemID,
				rec.OrderOption,
				string(rec.GiftOption),
				textutil.SafeString(rec.GiftMessage),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("design %d: %w", design, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("design %d: %w", design, err)
		}
		out[design] = buf.Bytes()
	}
	return out, nil
}

// DesignCSVZip bundles all design CSVs into one ZIP archive, files in
// ascending design order.
func DesignCSVZip(csvs map[int][]byte) ([]byte, error) {
	designs := make([]int, 0, len(csvs))
	for d := range csvs {
		designs = append(designs, d)
	}
	sort.Ints(designs)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, d := range designs {
		f, err := zw.Create(fmt.Sprintf("design_%d.csv", d))
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(csvs[d]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
