package entity

import "github.com/okempf/boardbatch/constants"

// OrderRecord is one ordered line item, pre-expansion. Fields that the
// extractor could not find keep their zero value; Quantity defaults to 1.
type OrderRecord struct {
	BuyerName         string               `json:"buyer_name"`
	ShipToName        string               `json:"ship_to_name"`
	AddressLine1      string               `json:"address_line1"`
	City              string               `json:"city"`
	State             string               `json:"state"`
	Zip               string               `json:"zip"`
	Country           string               `json:"country"`
	OrderID           string               `json:"order_id"`
	OrderItemID       string               `json:"order_item_id"`
	OrderDate         string               `json:"order_date"`
	ProductTitle      string               `json:"product_title"`
	SKU               string               `json:"sku"`
	ASIN              string               `json:"asin"`
	Quantity          int                  `json:"quantity"`
	OrderOption       string               `json:"order_option"`
	DesignNumber      *int                 `json:"design_number,omitempty"`
	CustomizationNote string               `json:"board_customization_note"`
	EngravingLetter   string               `json:"engraving_letter"`
	GiftOption        constants.GiftOption `json:"gift_option"`
	GiftMessage       string               `json:"gift_message"`
	SpellingConfirm   string               `json:"spelling_confirmation"`

	// Match annotation, attached by the matcher.
	MatchedLabelID string                `json:"matched_label_id"`
	LabelStatus    constants.MatchStatus `json:"shipping_label_status"`

	// Set when the record fails schema validation; the record is still kept.
	NeedsReview bool `json:"needs_review,omitempty"`
}

// DesignOrZero returns the design number, or 0 when absent.
func (o *OrderRecord) DesignOrZero() int {
	if o.DesignNumber == nil {
		return 0
	}
	return *o.DesignNumber
}
