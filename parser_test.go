package texttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringParser_IsNumeric(t *testing.T) {
	parser := NewStringParser()
	tests := []struct {
		text string
		want bool
	}{
		{text: "42", want: true},
		{text: "-3,14", want: true},
		{text: "+7", want: true},
		{text: ".5", want: true},
		{text: "3.5e3", want: true},
		{text: "1,234.50", want: true},
		{text: "1.234.567,89", want: true},
		{text: "12%", want: true},
		{text: "12 %", want: true},
		{text: " 8 ", want: true},
		{text: "", want: false},
		{text: "-", want: false},
		{text: "Score", want: false},
		{text: "1,2,3", want: false},
		{text: "1 000", want: false},
		{text: "0x10", want: false},
		{text: "1_000", want: false},
		{text: "Inf", want: false},
		{text: "NaN", want: false},
		{text: "12abc", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, parser.IsNumeric(tt.text))
		})
	}

	strict := &StringParser{}
	require.False(t, strict.IsNumeric("12%"))
	require.False(t, strict.IsNumeric("1.234.567,89"))
	require.True(t, strict.IsNumeric("3,5"))
}

func TestStringParser_ParseFloat(t *testing.T) {
	parser := NewStringParser()
	tests := []struct {
		str  string
		want float64
	}{
		{str: "3.14", want: 3.14},
		{str: "3,14", want: 3.14},
		{str: "-3,14", want: -3.14},
		{str: "1,234.5", want: 1234.5},
		{str: "1.234,5", want: 1234.5},
		{str: "1.234.567", want: 1234567},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			f, err := parser.ParseFloat(tt.str)
			require.NoError(t, err)
			require.InDelta(t, tt.want, f, 1e-9)
		})
	}

	_, err := parser.ParseFloat("abc")
	require.Error(t, err)
}
