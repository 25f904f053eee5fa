package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/entity"
)

func intp(n int) *int { return &n }

func TestDesignCSVs(t *testing.T) {
	expanded := []entity.OrderRecord{
		{
			BuyerName:         "Jane",
			ShipToName:        "Jane Doe",
			OrderID:           "111-1111111-1111111",
			OrderItemID:       "40123456789012",
			DesignNumber:      intp(7),
			CustomizationNote: "The Does Est. 2020",
			EngravingLetter:   "D",
			OrderOption:       constants.BoardTypeUtensilsEngraving,
			GiftOption:        constants.GiftOptionYes,
			GiftMessage:       "Happy Anniversary!",
		},
		{OrderID: "222-2222222-2222222", DesignNumber: intp(3), GiftOption: constants.GiftOptionNo},
		{OrderID: "333-3333333-3333333", GiftOption: constants.GiftOptionNo}, // no design
	}

	csvs, err := DesignCSVs(expanded)
	require.NoError(t, err)
	require.Len(t, csvs, 2)
	require.Contains(t, csvs, 7)
	require.Contains(t, csvs, 3)

	r := csv.NewReader(bytes.NewReader(csvs[7]))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, designCSVHeader, rows[0])
	assert.Equal(t, []string{
		"Jane_Jane_Doe",
		"7",
		"The Does Est. 2020",
		"",
		"",
		"D",
		"111-1111111-1111111",
		"40123456789012",
		constants.BoardTypeUtensilsEngraving,
		"YES",
		"Happy Anniversary!",
	}, rows[1])
}

func TestDesignCSVZip(t *testing.T) {
	csvs := map[int][]byte{
		3: []byte("three"),
		1: []byte("one"),
	}
	data, err := DesignCSVZip(csvs)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "design_1.csv", zr.File[0].Name)
	assert.Equal(t, "design_3.csv", zr.File[1].Name)
}

func TestGiftMessagesCSV(t *testing.T) {
	expanded := []entity.OrderRecord{
		{ShipToName: "Jane Doe", OrderID: "111-1111111-1111111", GiftOption: constants.GiftOptionYes, GiftMessage: "Happy Anniversary!"},
		{ShipToName: "John Roe", OrderID: "222-2222222-2222222", GiftOption: constants.GiftOptionNo},
	}

	data, err := GiftMessagesCSV(expanded)
	require.NoError(t, err)
	require.NotNil(t, data)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Buyer Name", "Order ID", "Gift Message"}, rows[0])
	assert.Equal(t, []string{"Jane Doe", "111-1111111-1111111", "Happy Anniversary!"}, rows[1])
}

func TestGiftMessagesCSVNoGifts(t *testing.T) {
	data, err := GiftMessagesCSV([]entity.OrderRecord{
		{ShipToName: "John Roe", GiftOption: constants.GiftOptionNo},
	})
	require.NoError(t, err)
	assert.Nil(t, data)
}
