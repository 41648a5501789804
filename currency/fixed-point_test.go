package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmountValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Zero", "0.0", "0"},
		{"Simple", "12.34", "12.34"},
		{"SingleDigitFrac", "1.1", "1.1"},
		{"TrailingZero", "12.50", "12.5"},
		{"LargerFraction", "100.234", "100.234"},
		{"Thousands", "1,234.56", "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseAmountValue(tt.value, nil, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, d.String())
		})
	}
}

func TestParseAmountValueCustomSeparators(t *testing.T) {
	po := new(ParseOpts).Init('.', ',')
	d, err := ParseAmountValue("1.234,56", po, nil)
	require.NoError(t, err)
	require.Equal(t, "1234.56", d.String())
}

func TestParseAmountValueInvalid(t *testing.T) {
	_, err := ParseAmountValue("not-a-number", nil, nil)
	require.Error(t, err)
	var pe ParseError
	require.ErrorAs(t, err, &pe)
}
