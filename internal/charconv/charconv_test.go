package charconv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/components"
)

func TestFromChars32Simple(t *testing.T) {
	got, n, status := FromChars32("123.45", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, 6, n)
	require.Equal(t, components.KindFinite, got.Kind)
	require.Equal(t, uint32(1234500), got.Significand)
	require.Equal(t, int32(-4), got.Exponent)
}

func TestFromChars32Exponent(t *testing.T) {
	got, _, status := FromChars32("1.5e+3", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, uint32(1500000), got.Significand)
	require.Equal(t, int32(-3), got.Exponent)
}

func TestFromChars32Negative(t *testing.T) {
	got, _, status := FromChars32("-7", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.True(t, got.Sign)
	require.Equal(t, uint32(7000000), got.Significand)
}

func TestFromChars32Infinity(t *testing.T) {
	got, n, status := FromChars32("-Infinity", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, 9, n)
	require.Equal(t, components.KindInfinity, got.Kind)
	require.True(t, got.Sign)
}

func TestFromChars32NaNPayload(t *testing.T) {
	got, n, status := FromChars32("nan(42)", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, 7, n)
	require.Equal(t, components.KindQuietNaN, got.Kind)
}

func TestFromChars32SignalingNaN(t *testing.T) {
	got, _, status := FromChars32("snan", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, components.KindSignalingNaN, got.Kind)
}

func TestFromChars32InvalidArgument(t *testing.T) {
	_, _, status := FromChars32("abc", components.RoundTiesToEven)
	require.Equal(t, StatusInvalidArgument, status)
}

func TestFromChars32StopsAtTrailingGarbage(t *testing.T) {
	got, n, status := FromChars32("42xyz", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, 2, n)
	require.Equal(t, uint32(4200000), got.Significand)
}

func TestToChars32Scientific(t *testing.T) {
	a := components.Triple32{Kind: components.KindFinite, Significand: 12345, Exponent: -2}
	require.Equal(t, "1.2345e+2", ToChars32(a, FormatScientific, -1))
}

func TestToChars32Fixed(t *testing.T) {
	a := components.Triple32{Kind: components.KindFinite, Significand: 12345, Exponent: -2}
	require.Equal(t, "123.45", ToChars32(a, FormatFixed, -1))
}

func TestToChars32FixedSmallFraction(t *testing.T) {
	a := components.Triple32{Kind: components.KindFinite, Significand: 5, Exponent: -4}
	require.Equal(t, "0.0005", ToChars32(a, FormatFixed, -1))
}

func TestToChars32TrimsTrailingZeros(t *testing.T) {
	a := components.Triple32{Kind: components.KindFinite, Significand: 1500, Exponent: -2}
	require.Equal(t, "15", ToChars32(a, FormatFixed, -1))
}

func TestToChars32Infinity(t *testing.T) {
	a := components.Infinity32(true)
	require.Equal(t, "-Infinity", ToChars32(a, FormatFixed, -1))
}

func TestToChars32NaN(t *testing.T) {
	a := components.QuietNaN32(false)
	require.Equal(t, "NaN", ToChars32(a, FormatFixed, -1))
}

func TestRoundTrip64(t *testing.T) {
	got, _, status := FromChars64("31415926535.8979", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	s := ToChars64(got, FormatFixed, -1)
	back, _, status := FromChars64(s, components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, got, back)
}

func TestRoundTrip128WideSignificand(t *testing.T) {
	got, _, status := FromChars128("1234567890123456789012345678901234", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	s := ToChars128(got, FormatScientific, -1)
	back, _, status := FromChars128(s, components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, got, back)
}

func TestFromChars32Hex(t *testing.T) {
	got, n, status := FromChars32("0x1.8p3", components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, 7, n)
	require.Equal(t, components.KindFinite, got.Kind)
}

func TestFromChars32HexNoExponentIsInvalid(t *testing.T) {
	_, _, status := FromChars32("0x1.8", components.RoundTiesToEven)
	require.Equal(t, StatusInvalidArgument, status)
}

func TestToChars32HexRoundTrip(t *testing.T) {
	a := components.Triple32{Kind: components.KindFinite, Significand: 15, Exponent: -1}
	s := ToChars32(a, FormatHex, -1)
	back, _, status := FromChars32(s, components.RoundTiesToEven)
	require.Equal(t, StatusSuccess, status)
	require.Equal(t, components.KindFinite, back.Kind)
}

func TestFromChars32ResultOutOfRange(t *testing.T) {
	_, _, status := FromChars32("1e1000", components.RoundTiesToEven)
	require.Equal(t, StatusResultOutOfRange, status)
}
