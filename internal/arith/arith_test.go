package arith

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

func tri32(sign bool, sig uint32, exp int32) components.Triple32 {
	return components.Triple32{Kind: components.KindFinite, Sign: sign, Significand: sig, Exponent: exp}
}

func TestAdd32SameExponent(t *testing.T) {
	a := tri32(false, 100, 0)
	b := tri32(false, 200, 0)
	got, sig := Add32(a, b, components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.Equal(t, tri32(false, 3000000, -4), got)
}

func TestAdd32DifferentExponent(t *testing.T) {
	// 12.3 + 0.77 = 13.07
	a := tri32(false, 123, -1)
	b := tri32(false, 77, -2)
	got, _ := Add32(a, b, components.RoundTiesToEven, components.P32)
	require.Equal(t, tri32(false, 1307000, -5), got)
}

func TestAdd32OppositeSignsToZero(t *testing.T) {
	a := tri32(false, 500, 0)
	b := tri32(true, 500, 0)
	got, _ := Add32(a, b, components.RoundTiesToEven, components.P32)
	require.True(t, got.IsZero())
	require.False(t, got.Sign)

	got, _ = Add32(a, b, components.RoundTowardNegative, components.P32)
	require.True(t, got.Sign)
}

func TestAdd32InfinityPlusFinite(t *testing.T) {
	got, sig := Add32(components.Infinity32(false), tri32(false, 1, 0), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.Equal(t, components.KindInfinity, got.Kind)
}

func TestAdd32OppositeInfinitiesInvalid(t *testing.T) {
	got, sig := Add32(components.Infinity32(false), components.Infinity32(true), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
	require.True(t, got.Kind.IsNaN())
}

func TestAdd32SignalingNaNPropagates(t *testing.T) {
	got, sig := Add32(components.SignalingNaN32(false), tri32(false, 1, 0), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
	require.Equal(t, components.KindQuietNaN, got.Kind)
}

func TestMul32(t *testing.T) {
	a := tri32(false, 25, 0)
	b := tri32(true, 4, 0)
	got, _ := Mul32(a, b, components.RoundTiesToEven, components.P32)
	require.Equal(t, tri32(true, 1000000, -4), got)
}

func TestQuo32ExactDivision(t *testing.T) {
	a := tri32(false, 100, 0)
	b := tri32(false, 4, 0)
	got, sig := Quo32(a, b, components.RoundTiesToEven, components.P32)
	require.Zero(t, sig.Has(components.SignalInvalidOperation))
	v, ok := Compare32(got, tri32(false, 25, 0))
	require.True(t, ok)
	require.Zero(t, v)
}

func TestQuo32Repeating(t *testing.T) {
	// 1/3 rounded to 7 significant digits: 0.3333333.
	a := tri32(false, 1, 0)
	b := tri32(false, 3, 0)
	got, _ := Quo32(a, b, components.RoundTiesToEven, components.P32)
	require.Equal(t, tri32(false, 3333333, -7), got)
}

func TestQuo32ByZero(t *testing.T) {
	got, sig := Quo32(tri32(false, 1, 0), tri32(false, 0, 0), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalDivisionByZero))
	require.Equal(t, components.KindInfinity, got.Kind)
}

func TestQuo32ZeroByZero(t *testing.T) {
	got, sig := Quo32(tri32(false, 0, 0), tri32(false, 0, 0), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
	require.True(t, got.Kind.IsNaN())
}

func TestCompare32Cohorts(t *testing.T) {
	v, ok := Compare32(tri32(false, 4, 0), tri32(false, 40, -1))
	require.True(t, ok)
	require.Zero(t, v)
}

func TestCompare32Order(t *testing.T) {
	v, ok := Compare32(tri32(false, 1, 2), tri32(false, 9, 0))
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestCompare32NaNUnordered(t *testing.T) {
	_, ok := Compare32(components.QuietNaN32(false), tri32(false, 1, 0))
	require.False(t, ok)
}

func TestCompare32ZeroWithStaleExponentVsTinyPositive(t *testing.T) {
	// A zero produced by cancellation keeps its cohort's exponent (here
	// 50, from subtracting two equal 5e50 values), which must not be
	// mistaken for a magnitude: zero is still less than any positive value.
	zero := tri32(false, 0, 50)
	tiny := tri32(false, 5, -50)
	v, ok := Compare32(zero, tiny)
	require.True(t, ok)
	require.Equal(t, -1, v)
}

func TestRem32(t *testing.T) {
	// 7 rem 3 = 1.
	got, _ := Rem32(tri32(false, 7, 0), tri32(false, 3, 0), components.RoundTiesToEven, components.P32)
	v, ok := Compare32(got, tri32(false, 1, 0))
	require.True(t, ok)
	require.Zero(t, v)
}

func TestNeg32AndAbs32(t *testing.T) {
	a := tri32(false, 5, 0)
	require.True(t, Neg32(a).Sign)
	require.False(t, Abs32(Neg32(a)).Sign)
}

func tri64(sign bool, sig uint64, exp int32) components.Triple64 {
	return components.Triple64{Kind: components.KindFinite, Sign: sign, Significand: sig, Exponent: exp}
}

func TestAdd64LargeExponentGap(t *testing.T) {
	a := tri64(false, 1, 300)
	b := tri64(false, 1, -300)
	got, _ := Add64(a, b, components.RoundTiesToEven, components.P64)
	// b is negligible at a's precision; result should equal a's cohort.
	v, ok := Compare64(got, a)
	require.True(t, ok)
	require.Zero(t, v)
}

func TestMul64Overflow(t *testing.T) {
	a := tri64(false, components.MaxCoefficient64, 300)
	b := tri64(false, 2, 300)
	got, sig := Mul64(a, b, components.RoundTiesToEven, components.P64)
	require.True(t, sig.Has(components.SignalOverflow))
	require.Equal(t, components.KindInfinity, got.Kind)
}

func TestQuo64(t *testing.T) {
	a := tri64(false, 1, 0)
	b := tri64(false, 7, 0)
	got, _ := Quo64(a, b, components.RoundTiesToEven, components.P64)
	require.Equal(t, components.KindFinite, got.Kind)
	require.False(t, got.Sign)
}

func TestCompare64RankDiffers(t *testing.T) {
	v, ok := Compare64(tri64(false, 1, 20), tri64(false, components.MaxCoefficient64, 0))
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestCompare64ZeroWithStaleExponentVsTinyPositive(t *testing.T) {
	zero := tri64(false, 0, 50)
	tiny := tri64(false, 5, -50)
	v, ok := Compare64(zero, tiny)
	require.True(t, ok)
	require.Equal(t, -1, v)
}

func tri128(sign bool, sig uint64, exp int32) components.Triple128 {
	return components.Triple128{Kind: components.KindFinite, Sign: sign, Significand: bigint.U128FromUint64(sig), Exponent: exp}
}

func TestAdd128(t *testing.T) {
	a := tri128(false, 100, 0)
	b := tri128(false, 200, 0)
	got, _ := Add128(a, b, components.RoundTiesToEven, components.P128)
	v, ok := Compare128(got, tri128(false, 300, 0))
	require.True(t, ok)
	require.Zero(t, v)
}

func TestMul128MaxCoefficient(t *testing.T) {
	a := components.Triple128{Kind: components.KindFinite, Significand: components.MaxCoefficient128, Exponent: 0}
	b := tri128(false, 1, 0)
	got, sig := Mul128(a, b, components.RoundTiesToEven, components.P128)
	require.Zero(t, sig)
	require.True(t, got.Significand.Cmp(components.MaxCoefficient128) == 0)
}

func TestQuo128DivisionByZero(t *testing.T) {
	got, sig := Quo128(tri128(false, 1, 0), components.Zero128(false), components.RoundTiesToEven, components.P128)
	require.True(t, sig.Has(components.SignalDivisionByZero))
	require.Equal(t, components.KindInfinity, got.Kind)
}

func TestFMA128(t *testing.T) {
	a := tri128(false, 2, 0)
	b := tri128(false, 3, 0)
	c := tri128(false, 1, 0)
	got, sig := FMA128(a, b, c, components.RoundTiesToEven, components.P128)
	require.Zero(t, sig)
	v, ok := Compare128(got, tri128(false, 7, 0))
	require.True(t, ok)
	require.Zero(t, v)
}

func TestCompare128NaN(t *testing.T) {
	_, ok := Compare128(components.SignalingNaN128(false), tri128(false, 1, 0))
	require.False(t, ok)
}

func TestCompare128ZeroWithStaleExponentVsTinyPositive(t *testing.T) {
	zero := tri128(false, 0, 50)
	tiny := tri128(false, 5, -50)
	v, ok := Compare128(zero, tiny)
	require.True(t, ok)
	require.Equal(t, -1, v)
}
