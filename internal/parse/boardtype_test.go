package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okempf/boardbatch/constants"
)

func TestNormalizeBoardType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no engraving", raw: "No Engraving please", want: constants.BoardTypeNoEngraving},
		{name: "board only", raw: "Board Only", want: constants.BoardTypeBoardOnly},
		{name: "board only but utensils mentioned", raw: "Board Only plus utensils", want: "Board Only plus utensils"},
		{name: "plus utensils with spaces", raw: "Board + Utensils Engraving", want: constants.BoardTypeUtensilsEngraving},
		{name: "plus utensils compact", raw: "board+utensils", want: constants.BoardTypeUtensilsEngraving},
		{name: "ampersand knife", raw: "Board & Knife engraving", want: constants.BoardTypeUtensilsEngraving},
		{name: "cheese knife", raw: "board + cheese knife set", want: constants.BoardTypeUtensilsEngraving},
		{name: "unknown passes through", raw: "Deluxe Walnut Platter", want: "Deluxe Walnut Platter"},
		{name: "empty", raw: "", want: ""},
		{name: "no engraving beats utensils", raw: "board + utensils, no engraving", want: constants.BoardTypeNoEngraving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBoardType(tt.raw))
		})
	}
}

func TestNormalizeBoardTypeIdempotent(t *testing.T) {
	for _, canonical := range []string{
		constants.BoardTypeNoEngraving,
		constants.BoardTypeBoardOnly,
		constants.BoardTypeUtensilsEngraving,
	} {
		assert.Equal(t, canonical, NormalizeBoardType(canonical))
	}
}
