package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "crlf to lf", input: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "tabs and runs of spaces collapse", input: "a\t\tb   c", want: "a b c"},
		{name: "blank line runs collapse", input: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "ruled-line artifacts dropped", input: "a\n------\nb", want: "a\n\nb"},
		{name: "trailing spaces trimmed per line", input: "a  \nb ", want: "a\nb"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
