package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okempf/boardbatch/constants"
)

const sampleSegment = `Order ID: 123-4567890-1234567
Order Date: Sat, Nov 15, 2025
Ship To:
Jane Doe
123 Main St
Beverly Hills, CA 90210
United States


Order Item ID: 40123456789012
SKU: CSTMBRD-XL
ASIN: B0ABCDEFGH
Personalized Charcuterie Board with Utensils
Quantity: 2
Customizations:
Select Your Order: Board + Utensils Engraving
Choose Your Design #: Design 7
Board Customization Note: The Does Est. 2020
Engraving Letter for Cheese Knife Handles: D
Gift Note & Gift Bag: Happy Anniversary!   With love,  us
Please CHECK for mistakes and spellings.: looks good
Surface 2:
Select Your Order: Board Only
Design 9
`

func TestExtractOrderFull(t *testing.T) {
	rec := ExtractOrder(sampleSegment)

	assert.Equal(t, "Jane", rec.BuyerName)
	assert.Equal(t, "Jane Doe", rec.ShipToName)
	assert.Equal(t, "123 Main St", rec.AddressLine1)
	assert.Equal(t, "Beverly Hills", rec.City)
	assert.Equal(t, "CA", rec.State)
	assert.Equal(t, "90210", rec.Zip)
	assert.Equal(t, "United States", rec.Country)

	assert.Equal(t, "123-4567890-1234567", rec.OrderID)
	assert.Equal(t, "40123456789012", rec.OrderItemID)
	assert.Equal(t, "2025-11-15", rec.OrderDate)
	assert.Equal(t, "CSTMBRD-XL", rec.SKU)
	assert.Equal(t, "B0ABCDEFGH", rec.ASIN)
	assert.Equal(t, "Personalized Charcuterie Board with Utensils", rec.ProductTitle)
	assert.Equal(t, 2, rec.Quantity)

	assert.Equal(t, constants.BoardTypeUtensilsEngraving, rec.OrderOption)
	require.NotNil(t, rec.DesignNumber)
	assert.Equal(t, 7, *rec.DesignNumber)
	assert.Equal(t, "The Does Est. 2020", rec.CustomizationNote)
	assert.Equal(t, "D", rec.EngravingLetter)
	assert.Equal(t, constants.GiftOptionYes, rec.GiftOption)
	assert.Equal(t, "Happy Anniversary! With love, us", rec.GiftMessage)
	assert.Equal(t, "looks good", rec.SpellingConfirm)
}

func TestExtractOrderIgnoresSecondSurface(t *testing.T) {
	rec := ExtractOrder(sampleSegment)
	// Surface 2 names Board Only and Design 9; the first surface wins.
	assert.Equal(t, constants.BoardTypeUtensilsEngraving, rec.OrderOption)
	assert.Equal(t, 7, *rec.DesignNumber)
}

func TestExtractOrderGiftDeclined(t *testing.T) {
	segment := strings.Join([]string{
		"Order ID: 123-4567890-1234567",
		"Customizations:",
		"Gift Note & Gift Bag: No thanks, Please CHECK for mistakes and spellings.: looks good",
	}, "\n")

	rec := ExtractOrder(segment)
	assert.Equal(t, constants.GiftOptionNo, rec.GiftOption)
	assert.Equal(t, "", rec.GiftMessage)
	assert.Equal(t, "looks good", rec.SpellingConfirm)
}

func TestExtractOrderDefaults(t *testing.T) {
	rec := ExtractOrder("Order ID: 999-9999999-9999999")

	assert.Equal(t, "999-9999999-9999999", rec.OrderID)
	assert.Equal(t, 1, rec.Quantity, "missing quantity defaults to 1")
	assert.Nil(t, rec.DesignNumber, "missing design number stays absent")
	assert.Equal(t, constants.GiftOptionNo, rec.GiftOption)
	assert.Equal(t, "", rec.GiftMessage)
	assert.Equal(t, "", rec.ShipToName)
	assert.Equal(t, "", rec.BuyerName)
	assert.Equal(t, "", rec.Country)
	assert.Equal(t, constants.MatchStatusMissing, rec.LabelStatus)
}

func TestExtractOrderDesignVariantFallback(t *testing.T) {
	segment := strings.Join([]string{
		"Order ID: 123-4567890-1234567",
		"Customizations:",
		"Design # 4",
	}, "\n")

	rec := ExtractOrder(segment)
	require.NotNil(t, rec.DesignNumber)
	assert.Equal(t, 4, *rec.DesignNumber)
}

func TestExtractOrderQtyLabelVariant(t *testing.T) {
	rec := ExtractOrder("Order ID: 123-4567890-1234567\nQty: 3")
	assert.Equal(t, 3, rec.Quantity)
}

func TestExtractOrderCountryKeywordOnly(t *testing.T) {
	segment := strings.Join([]string{
		"Order ID: 123-4567890-1234567",
		"Ship To:",
		"Jane Doe",
		"123 Main St",
		"Beverly Hills, CA 90210",
		"Attn: Front Desk",
	}, "\n")

	rec := ExtractOrder(segment)
	assert.Equal(t, "", rec.Country, "last block line without a country keyword is not a country")
	assert.Equal(t, "90210", rec.Zip)
}

func TestExtractOrderNoLetterInferredFromNote(t *testing.T) {
	segment := strings.Join([]string{
		"Order ID: 123-4567890-1234567",
		"Customizations:",
		"Board Customization Note: The Smiths",
	}, "\n")

	rec := ExtractOrder(segment)
	assert.Equal(t, "The Smiths", rec.CustomizationNote)
	assert.Equal(t, "", rec.EngravingLetter, "letter is never derived from the note")
}
