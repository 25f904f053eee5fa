package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces("  a \t b\n\nc "))
	assert.Equal(t, "", CollapseSpaces("   "))
}

func TestFileFriendlyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces to underscores", input: "Jane Doe", want: "Jane_Doe"},
		{name: "punctuation dropped", input: "Jane D'Oe-Smith", want: "Jane_DOeSmith"},
		{name: "surrounding space trimmed", input: "  Jane  ", want: "Jane"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileFriendlyName(tt.input))
		})
	}
}

func TestNormalizeForMatch(t *testing.T) {
	assert.Equal(t, "123mainst", NormalizeForMatch("123 Main St."))
	assert.Equal(t, "janedoe", NormalizeForMatch("  Jane DOE "))
	assert.Equal(t, "", NormalizeForMatch("!!! ---"))
}

func TestNonEmptyLines(t *testing.T) {
	lines := NonEmptyLines("a\n\n  \nb\n c \n")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "Jane", FirstToken("Jane Doe"))
	assert.Equal(t, "", FirstToken("   "))
}
