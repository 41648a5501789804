package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/trippwill/decimal/internal/arith"
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

func TestFromInt64_32RoundTrip(t *testing.T) {
	got, sig := FromInt64_32(12345, components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	v, flags := ToInt64_32(got)
	require.Zero(t, flags)
	require.Equal(t, int64(12345), v)
}

func TestFromInt64_32Negative(t *testing.T) {
	got, _ := FromInt64_32(-42, components.RoundTiesToEven, components.P32)
	require.True(t, got.Sign)
	v, _ := ToInt64_32(got)
	require.Equal(t, int64(-42), v)
}

func TestFromInt64_32NarrowsWithRounding(t *testing.T) {
	// 12345678 has 8 digits, one more than P32's 7; rounds to 1234568e1.
	got, sig := FromInt64_32(12345678, components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInexact))
	require.Equal(t, uint32(1234568), got.Significand)
	require.Equal(t, int32(1), got.Exponent)
}

func TestFromFloat64_32ExactSmallInteger(t *testing.T) {
	got, _ := FromFloat64_32(100.0, components.RoundTiesToEven, components.P32)
	want, _ := FromInt64_32(100, components.RoundTiesToEven, components.P32)
	v, ok := arith.Compare32(got, want)
	require.True(t, ok)
	require.Zero(t, v)
}

func TestFromFloat64_32NaN(t *testing.T) {
	got, _ := FromFloat64_32(math.NaN(), components.RoundTiesToEven, components.P32)
	require.True(t, got.Kind.IsNaN())
}

func TestFromFloat64_32Infinity(t *testing.T) {
	got, _ := FromFloat64_32(math.Inf(1), components.RoundTiesToEven, components.P32)
	require.Equal(t, components.KindInfinity, got.Kind)
	require.False(t, got.Sign)
}

func TestFloat64RoundTrip32(t *testing.T) {
	got, _ := FromFloat64_32(3.5, components.RoundTiesToEven, components.P32)
	back := ToFloat64_32(got)
	require.Equal(t, 3.5, back)
}

func TestFloat64RoundTrip64(t *testing.T) {
	got, _ := FromFloat64_64(2.718281828, components.RoundTiesToEven, components.P64)
	back := ToFloat64_64(got)
	require.InDelta(t, 2.718281828, back, 1e-9)
}

func TestFloat64RoundTrip128(t *testing.T) {
	got, _ := FromFloat64_128(1.0/3.0, components.RoundTiesToEven, components.P128)
	back := ToFloat64_128(got)
	require.InDelta(t, 1.0/3.0, back, 1e-15)
}

func TestFloat16RoundTrip(t *testing.T) {
	h := float16.Fromfloat32(1.5)
	got, _ := FromFloat16_64(h, components.RoundTiesToEven, components.P64)
	back := ToFloat16_64(got)
	require.Equal(t, h, back)
}

func TestWiden32To64(t *testing.T) {
	a := components.Triple32{Kind: components.KindFinite, Sign: true, Significand: 123, Exponent: -2}
	got := Widen32To64(a)
	require.Equal(t, uint64(123), got.Significand)
	require.Equal(t, int32(-2), got.Exponent)
	require.True(t, got.Sign)
}

func TestWiden64To128(t *testing.T) {
	a := components.Triple64{Kind: components.KindFinite, Significand: 9999999999, Exponent: 5}
	got := Widen64To128(a)
	require.Zero(t, got.Significand.Cmp(bigint.U128FromUint64(9999999999)))
	require.Equal(t, int32(5), got.Exponent)
}

func TestNarrow64To32Rounds(t *testing.T) {
	a := components.Triple64{Kind: components.KindFinite, Significand: 12345678, Exponent: 0}
	got, sig := Narrow64To32(a, components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInexact))
	require.Equal(t, uint32(1234568), got.Significand)
}

func TestNarrow128To32FromWideSignificand(t *testing.T) {
	// 30 repetitions of the digit 7 is not an exact multiple of any power
	// of ten, so narrowing all the way down to 7 significant digits must
	// discard nonzero digits and report Inexact.
	sig := bigint.U128FromUint64(7)
	ten := bigint.U128FromUint64(10)
	for i := 0; i < 29; i++ {
		sig = sig.Mul(ten).Add(bigint.U128FromUint64(7))
	}
	a := components.Triple128{Kind: components.KindFinite, Significand: sig, Exponent: 0}
	got, flags := Narrow128To32(a, components.RoundTiesToEven, components.P32)
	require.True(t, flags.Has(components.SignalInexact))
	require.Equal(t, components.KindFinite, got.Kind)
}

func TestNarrowPreservesInfinity(t *testing.T) {
	got, sig := Narrow128To64(components.Infinity128(true), components.RoundTiesToEven, components.P64)
	require.Zero(t, sig)
	require.Equal(t, components.KindInfinity, got.Kind)
	require.True(t, got.Sign)
}

