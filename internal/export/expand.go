// Package export produces the downloadable artifacts: per-design CSVs, the
// gift-message CSV, the orders workbook, and the 4×6 label PDFs.
package export

import "github.com/okempf/boardbatch/internal/entity"

// ExpandByQuantity denormalizes orders into one row per physical board:
// each row is repeated exactly Quantity times (floored at 1), in the input
// order, with every field unchanged. No row index is injected; consumers
// that need to number units use position in the result.
func ExpandByQuantity(orders []entity.OrderRecord) []entity.OrderRecord {
	var out []entity.OrderRecord
	for _, rec := range orders {
		q := rec.Quantity
		if q < 1 {
			q = 1
		}
		for i := 0; i < q; i++ {
			out = append(out, rec)
		}
	}
	return out
}
