package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// DummyCurrency is a simple Currency implementation for testing.
type DummyCurrency struct{}

func (d DummyCurrency) GetCode() Code              { return "XXX" }
func (d DummyCurrency) GetSymbol() Symbol          { return "$" }
func (d DummyCurrency) GetMinorUnitFactor() Factor { return 100 }

// OtherCurrency is a second Currency implementation, for conversion tests.
type OtherCurrency struct{}

func (o OtherCurrency) GetCode() Code              { return "YYY" }
func (o OtherCurrency) GetSymbol() Symbol          { return "€" }
func (o OtherCurrency) GetMinorUnitFactor() Factor { return 100 }

func mustAmount(t *testing.T, value string) Amount[USD] {
	t.Helper()
	a, err := NewAmountFromString[USD](value, nil, nil)
	require.NoError(t, err)
	return a
}

func TestAmountAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{"Same precision", "10.00", "20.00", "30"},
		{"Different precision", "10.00", "20", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAmount(t, tt.a)
			b := mustAmount(t, tt.b)
			result := a.Add(b, nil)
			require.Equal(t, tt.expected, result.Value.String())
		})
	}
}

func TestAmountSub(t *testing.T) {
	a := mustAmount(t, "30.00")
	b := mustAmount(t, "10.00")
	result := a.Sub(b, nil)
	require.Equal(t, "20", result.Value.String())
}

func TestAmountMul(t *testing.T) {
	a := mustAmount(t, "10.00")
	factor, err := ParseAmountValue("2.5", nil, nil)
	require.NoError(t, err)
	result := a.Mul(factor, nil)
	require.Equal(t, "25", result.Value.String())
}

func TestAmountDiv(t *testing.T) {
	a := mustAmount(t, "10.00")
	divisor, err := ParseAmountValue("2.5", nil, nil)
	require.NoError(t, err)
	result := a.Div(divisor, nil)
	require.Equal(t, "4", result.Value.String())
}

func TestAmountIsZeroAndEqual(t *testing.T) {
	zero := mustAmount(t, "0")
	require.True(t, zero.IsZero())

	a := mustAmount(t, "5.00")
	b := mustAmount(t, "5")
	require.True(t, a.Equal(b))

	c := mustAmount(t, "5.01")
	require.False(t, a.Equal(c))
}

func TestAmountNegAbs(t *testing.T) {
	a := mustAmount(t, "5.00")
	require.Equal(t, "-5", a.Neg().Value.String())
	require.Equal(t, "5", a.Neg().Abs().Value.String())
}

func TestConvIert(t *testing.T) {
	input, err := NewAmountFromString[DummyCurrency]("100.00", nil, nil)
	require.NoError(t, err)
	factor, err := ParseAmountValue("2", nil, nil)
	require.NoError(t, err)

	result := ConvIert[DummyCurrency, OtherCurrency](input, factor, nil)
	require.Equal(t, "200", result.Value.String())
	require.Equal(t, Symbol("€"), result.Currency.GetSymbol())
}

func TestAmountFormat(t *testing.T) {
	result, err := AmountAdd[DummyCurrency]("100.00", "50.50", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "$ 150.50", result.String())
}

func TestAmountSubFormat(t *testing.T) {
	result, err := AmountSub[DummyCurrency]("100.00", "50.50", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "$ 49.50", result.String())
}

func TestAmountMulFormat(t *testing.T) {
	result, err := AmountMul[DummyCurrency]("100.00", "2.50", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "$ 250.00", result.String())
}

func TestAmountDivFormat(t *testing.T) {
	result, err := AmountDiv[DummyCurrency]("100.00", "2.50", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "$ 40.00", result.String())
}

func TestAmountParseError(t *testing.T) {
	_, err := NewAmountFromString[USD]("not-a-number", nil, nil)
	require.Error(t, err)
}
