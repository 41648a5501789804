package bid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/components"
)

func TestPack32RoundTrip(t *testing.T) {
	cases := []components.Triple32{
		{Kind: components.KindFinite, Significand: 1234567, Exponent: 0},
		{Kind: components.KindFinite, Sign: true, Significand: 9999999, Exponent: 90},
		{Kind: components.KindFinite, Significand: 0, Exponent: -50},
		components.Infinity32(true),
		components.QuietNaN32(false),
		components.SignalingNaN32(true),
	}
	for _, want := range cases {
		got := Unpack32(Pack32(want))
		require.Equal(t, want, got)
	}
}

func TestPack32LongFormMSD(t *testing.T) {
	// decimal32(9_999_999, 90): biased exponent 191, long-form MSD 9,
	// trailing significand 999999.
	bits := Pack32(components.Triple32{Kind: components.KindFinite, Significand: 9999999, Exponent: 90})
	g := (bits >> 26) & 0x1F
	require.EqualValues(t, 0b11, g>>3, "long form requires G0G1 = 11")
	msd := 8 + (g & 0x1)
	require.EqualValues(t, 9, msd)
	trailing := bits & ((1 << t32) - 1)
	require.EqualValues(t, 999999, trailing)
}

func TestPack64RoundTrip(t *testing.T) {
	cases := []components.Triple64{
		{Kind: components.KindFinite, Significand: 1234567890123456, Exponent: 0},
		{Kind: components.KindFinite, Sign: true, Significand: 9999999999999999, Exponent: 300},
		{Kind: components.KindFinite, Significand: 0, Exponent: -200},
		components.Infinity64(false),
		components.QuietNaN64(true),
		components.SignalingNaN64(false),
	}
	for _, want := range cases {
		got := Unpack64(Pack64(want))
		require.Equal(t, want, got)
	}
}

func TestPack128RoundTrip(t *testing.T) {
	max128 := components.MaxCoefficient128
	cases := []components.Triple128{
		{Kind: components.KindFinite, Significand: components.U128{Lo: 123456789}, Exponent: 0},
		{Kind: components.KindFinite, Sign: true, Significand: max128, Exponent: 6000},
		{Kind: components.KindFinite, Significand: components.U128{}, Exponent: -3000},
		components.Infinity128(true),
		components.QuietNaN128(false),
		components.SignalingNaN128(true),
	}
	for _, want := range cases {
		got := Unpack128(Pack128(want))
		require.Equal(t, want, got)
	}
}

func TestPack32CohortsEncodeDifferently(t *testing.T) {
	// 4 * 10^0 and 40 * 10^-1 are the same value but distinct BID bit
	// patterns: BID preserves the cohort member, not just the value.
	a := Pack32(components.Triple32{Kind: components.KindFinite, Significand: 4, Exponent: 0})
	b := Pack32(components.Triple32{Kind: components.KindFinite, Significand: 40, Exponent: -1})
	require.NotEqual(t, a, b)
}
