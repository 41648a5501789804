package dpd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

func TestDecletRoundTrip(t *testing.T) {
	for a := uint8(0); a < 10; a++ {
		for b := uint8(0); b < 10; b++ {
			for c := uint8(0); c < 10; c++ {
				declet := encodeDeclet(a, b, c)
				require.Less(t, declet, uint16(1024))
				d1, d2, d3 := decodeDeclet(declet)
				require.Equal(t, a, d1)
				require.Equal(t, b, d2)
				require.Equal(t, c, d3)
			}
		}
	}
}

func TestPack32RoundTrip(t *testing.T) {
	cases := []components.Triple32{
		{Kind: components.KindFinite, Significand: 1234567, Exponent: 0},
		{Kind: components.KindFinite, Sign: true, Significand: 9999999, Exponent: 90},
		{Kind: components.KindFinite, Significand: 0, Exponent: -50},
		{Kind: components.KindFinite, Significand: 7500, Exponent: -3},
		components.Infinity32(true),
		components.QuietNaN32(false),
		components.SignalingNaN32(true),
	}
	for _, want := range cases {
		got := Unpack32(Pack32(want))
		require.Equal(t, want, got)
	}
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
		{Kind: components.KindFinite, Significand: bigint.U128{Lo: 123456789}, Exponent: 0},
		{Kind: components.KindFinite, Sign: true, Significand: max128, Exponent: 6000},
		{Kind: components.KindFinite, Significand: bigint.U128{}, Exponent: -3000},
		components.Infinity128(true),
		components.QuietNaN128(false),
		components.SignalingNaN128(true),
	}
	for _, want := range cases {
		got := Unpack128(Pack128(want))
		require.Equal(t, want, got)
	}
}
