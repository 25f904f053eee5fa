package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "Jane Doe", b: "Jane Doe", want: true},
		{name: "one typo passes", a: "Jane Doe", b: "Jane Doee", want: true},
		{name: "case and punctuation ignored", a: "JANE DOE", b: "jane doe.", want: true},
		{name: "different person", a: "Jane Doe", b: "John Smith", want: false},
		{name: "empty left", a: "", b: "Jane Doe", want: false},
		{name: "empty right", a: "Jane Doe", b: "", want: false},
		{name: "both normalize to empty", a: "---", b: "!!!", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b, DefaultThreshold))
		})
	}
}

func TestEqualSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Jane Doe", "Jane Doee"},
		{"Jane Doe", "John Smith"},
		{"", "Jane Doe"},
		{"A", "A"},
	}
	for _, p := range pairs {
		assert.Equal(t, Equal(p[0], p[1], DefaultThreshold), Equal(p[1], p[0], DefaultThreshold),
			"fuzzy equality must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestRatioThreshold(t *testing.T) {
	// "janedoe" vs "janedoee" is one edit over eight characters.
	assert.GreaterOrEqual(t, Ratio("Jane Doe", "Jane Doee"), 0.8)
	assert.Less(t, Ratio("Jane Doe", "John Smith"), 0.8)
}

func TestEqualZeroThresholdUsesDefault(t *testing.T) {
	assert.True(t, Equal("Jane Doe", "Jane Doee", 0))
	assert.False(t, Equal("Jane Doe", "John Smith", 0))
}
