// Package match reconciles parsed orders against shipping-label records.
package match

import (
	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/entity"
	"github.com/okempf/boardbatch/internal/fuzzy"
	"github.com/okempf/boardbatch/internal/textutil"
)

// Config holds the matcher knobs.
type Config struct {
	// NameThreshold is the minimum fuzzy-name similarity; zero means the
	// default of 0.8.
	NameThreshold float64
}

type candidate struct {
	label    *entity.ShippingLabel
	normAddr string
}

// Orders returns a new order collection annotated with match outcomes. The
// label collection is never mutated. Per order the candidate scan is strict:
// postal codes equal, then normalized address line 1 equal, then fuzzy-equal
// recipient names; the first qualifying label in document/page order wins.
func Orders(orders []entity.OrderRecord, labels []entity.ShippingLabel, cfg Config) []entity.OrderRecord {
	out := make([]entity.OrderRecord, len(orders))
	copy(out, orders)

	if len(orders) == 0 || len(labels) == 0 {
		for i := range out {
			out[i].MatchedLabelID = ""
			out[i].LabelStatus = constants.MatchStatusMissing
		}
		return out
	}

	// Group labels by postal code up front; scan order within a group is the
	// original document/page order, so first-match semantics hold.
	byZip := make(map[string][]candidate, len(labels))
	for i := range labels {
		lab := &labels[i]
		zip := textutil.SafeString(lab.Zip)
		if zip == "" {
			continue
		}
		byZip[zip] = append(byZip[zip], candidate{
			label:    lab,
			normAddr: textutil.NormalizeForMatch(lab.AddressLine1),
		})
	}

	for i := range out {
		out[i].MatchedLabelID = ""
		out[i].LabelStatus = constants.MatchStatusMissing

		zip := textutil.SafeString(out[i].Zip)
		if zip == "" {
			continue
		}
		addr := textutil.NormalizeForMatch(out[i].AddressLine1)
		if addr == "" {
			continue
		}

		for _, cand := range byZip[zip] {
			if cand.normAddr == "" || cand.normAddr != addr {
				continue
			}
			if !fuzzy.Equal(out[i].ShipToName, cand.label.RecipientName, cfg.NameThreshold) {
				continue
			}
			out[i].MatchedLabelID = cand.label.LabelID
			out[i].LabelStatus = constants.MatchStatusMatched
			break
		}
	}
	return out
}
