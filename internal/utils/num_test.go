package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatLoose(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5", 1.5, true},
		{"1,5", 1.5, true},
		{"1 234,50", 1234.5, true},
		{"1\u00A0234,50", 1234.5, true},
		{"2\u202F345,6", 2345.6, true},
		{"197 ,00", 197, true},
		{"(197,00)", -197, true},
		{"-42", -42, true},
		{"грн 45,5", 45.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{".", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFloatLoose(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseFloatOr(t *testing.T) {
	assert.Equal(t, 7.0, ParseFloatOr("", 7))
	assert.Equal(t, 7.0, ParseFloatOr("n/a", 7))
	assert.Equal(t, 1234.5, ParseFloatOr("1 234,5", 7))
}
