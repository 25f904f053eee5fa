package parse

// BuildOrderJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a well-formed order record. Validation is advisory:
// a violating record is flagged for review, never dropped.
func BuildOrderJSONSchema() map[string]any {
	props := map[string]any{
		"buyer_name":               map[string]any{"type": "string"},
		"ship_to_name":             map[string]any{"type": "string"},
		"address_line1":            map[string]any{"type": "string"},
		"city":                     map[string]any{"type": "string"},
		"state":                    map[string]any{"type": "string", "pattern": `^([A-Z]{2})?$`},
		"zip":                      map[string]any{"type": "string", "pattern": `^(\d{5}(-\d{4})?)?$`},
		"country":                  map[string]any{"type": "string"},
		"order_id":                 map[string]any{"type": "string", "pattern": `^\d{3}-\d{7}-\d{7}$`},
		"order_item_id":            map[string]any{"type": "string"},
		"order_date":               map[string]any{"type": "string"},
		"product_title":            map[string]any{"type": "string"},
		"sku":                      map[string]any{"type": "string"},
		"asin":                     map[string]any{"type": "string"},
		"quantity":                 map[string]any{"type": "integer", "minimum": 1},
		"order_option":             map[string]any{"type": "string"},
		"design_number":            map[string]any{"type": "integer", "minimum": 1},
		"board_customization_note": map[string]any{"type": "string"},
		"engraving_letter":         map[string]any{"type": "string"},
		"gift_option":              map[string]any{"type": "string", "enum": []string{"YES", "NO"}},
		"gift_message":             map[string]any{"type": "string"},
		"spelling_confirmation":    map[string]any{"type": "string"},
		"matched_label_id":         map[string]any{"type": "string"},
		"shipping_label_status":    map[string]any{"type": "string", "enum": []string{"Matched", "Missing"}},
		"needs_review":             map[string]any{"type": "boolean"},
	}
	required := []string{"order_id", "ship_to_name", "quantity", "gift_option"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
		// A gift message only makes sense on a YES answer.
		"if": map[string]any{
			"properties": map[string]any{
				"gift_option": map[string]any{"const": "NO"},
			},
		},
		"then": map[string]any{
			"properties": map[string]any{
				"gift_message": map[string]any{"maxLength": 0},
			},
		},
	}
}
