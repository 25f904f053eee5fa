package export

import (
	"bytes"
	"encoding/csv"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/entity"
)

// GiftMessagesCSV projects the rows with a gift to recipient name, order id,
// and message. Returns nil when no row has a gift.
func GiftMessagesCSV(expanded []entity.OrderRecord) ([]byte, error) {
	var gifts []entity.OrderRecord
	for _, rec := range expanded {
		if rec.GiftOption == constants.GiftOptionYes {
			gifts = append(gifts, rec)
		}
	}
	if len(gifts) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Buyer Name", "Order ID", "Gift Message"}); err != nil {
		return nil, err
	}
	for _, rec := range gifts {
		if err := w.Write([]string{rec.ShipToName, rec.OrderID, rec.GiftMessage}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
