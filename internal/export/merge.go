package export

import (
	"sort"

	"github.com/okempf/boardbatch/internal/entity"
)

// MergeGroup is one unit of the combined output: the matched shipping-label
// page (nil for the unmatched remainder group) followed by its manufacturing
// rows.
type MergeGroup struct {
	Label  *entity.ShippingLabel
	Orders []entity.OrderRecord
}

// GroupByLabel arranges the expanded table for the page-splicing step:
// groups keyed by matched label, groups in label document/page order, rows
// within a group sorted by design number, then recipient name, then order
// id. Rows with no matched label form a trailing group with a nil Label so
// they still get manufacturing pages.
func GroupByLabel(expanded []entity.OrderRecord, labels []entity.ShippingLabel) []MergeGroup {
	byID := make(map[string]*entity.ShippingLabel, len(labels))
	for i := range labels {
		byID[labels[i].LabelID] = &labels[i]
	}

	grouped := make(map[string][]entity.OrderRecord)
	var unmatched []entity.OrderRecord
	for _, rec := range expanded {
		if rec.MatchedLabelID == "" || byID[rec.MatchedLabelID] == nil {
			unmatched = append(unmatched, rec)
			continue
		}
		grouped[rec.MatchedLabelID] = append(grouped[rec.MatchedLabelID], rec)
	}

	var out []MergeGroup
	for i := range labels {
		rows := grouped[labels[i].LabelID]
		if len(rows) == 0 {
			continue
		}
		sortGroup(rows)
		out = append(out, MergeGroup{Label: &labels[i], Orders: rows})
	}
	if len(unmatched) > 0 {
		sortGroup(unmatched)
		out = append(out, MergeGroup{Orders: unmatched})
	}
	return out
}

func sortGroup(rows []entity.OrderRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		if a, b := rows[i].DesignOrZero(), rows[j].DesignOrZero(); a != b {
			return a < b
		}
		if rows[i].ShipToName != rows[j].ShipToName {
			return rows[i].ShipToName < rows[j].ShipToName
		}
		return rows[i].OrderID < rows[j].OrderID
	})
}
