package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/bigint"
)

func TestNormalize32Idempotent(t *testing.T) {
	tri, sig := Normalize32(false, 1234567, 0, RoundTiesToEven, P32)
	require.Zero(t, sig)
	again, sig2 := Normalize32(tri.Sign, uint64(tri.Significand), tri.Exponent, RoundTiesToEven, P32)
	require.Zero(t, sig2)
	require.Equal(t, tri, again)
}

func TestNormalize32RoundsHalfToEven(t *testing.T) {
	// 12345675 with one excess digit, discarded digit stream "...75" at
	// exactly half (divisor 10, remainder 5) rounds to even: 1234568 (even).
	tri, _ := Normalize32(false, 12345675, 0, RoundTiesToEven, P32)
	require.EqualValues(t, 1234568, tri.Significand)
	require.EqualValues(t, 1, tri.Exponent)
}

func TestNormalize32Overflow(t *testing.T) {
	tri, sig := Normalize32(false, uint64(MaxCoefficient32), EMax32+1, RoundTiesToEven, P32)
	require.True(t, sig.Has(SignalOverflow))
	require.Equal(t, KindInfinity, tri.Kind)
}

func TestNormalize32OverflowAtFullPrecision(t *testing.T) {
	// 9999999 at exponent 91 is one decade past decimal32's true maximum
	// (9999999e90); the adjusted exponent e+d-1 = 97 exceeds EMax32 even
	// though the direct exponent 91 does not, so this must overflow too.
	tri, sig := Normalize32(false, 9999999, 91, RoundTiesToEven, P32)
	require.True(t, sig.Has(SignalOverflow))
	require.Equal(t, KindInfinity, tri.Kind)
}

func TestNormalize32CanonicalUpscale(t *testing.T) {
	tri, _ := Normalize32(false, 5, -10, RoundTiesToEven, P32)
	require.EqualValues(t, 5000000, tri.Significand)
	require.EqualValues(t, -16, tri.Exponent)
}

func TestNormalize64CohortEquality(t *testing.T) {
	// significands 4 * 10^0 and 40 * 10^-1 denote the same value; both
	// should normalize (at full precision) to the same canonical triple.
	a, _ := Normalize64(false, U128{Lo: 4}, 0, RoundTiesToEven, P64)
	b, _ := Normalize64(false, U128{Lo: 40}, -1, RoundTiesToEven, P64)
	require.Equal(t, a, b)
}

func TestNormalize64OverflowAtFullPrecision(t *testing.T) {
	// full 16-nines significand at exponent 370 is one decade past
	// decimal64's true maximum; adjusted exponent e+d-1 = 385 > EMax64
	// even though the direct exponent 370 does not exceed it.
	tri, sig := Normalize64(false, U128{Lo: MaxCoefficient64}, 370, RoundTiesToEven, P64)
	require.True(t, sig.Has(SignalOverflow))
	require.Equal(t, KindInfinity, tri.Kind)
}

func TestNormalize128Zero(t *testing.T) {
	tri, sig := Normalize128(true, U256{}, 5, RoundTiesToEven, P128)
	require.Zero(t, sig)
	require.True(t, tri.IsZero())
	require.True(t, tri.Sign)
}

func TestNormalize128OverflowAtFullPrecision(t *testing.T) {
	// full 34-nines significand at exponent 6112 is one decade past
	// decimal128's true maximum; adjusted exponent e+d-1 = 6145 > EMax128
	// even though the direct exponent 6112 does not exceed it.
	tri, sig := Normalize128(false, bigint.U256FromU128(MaxCoefficient128), 6112, RoundTiesToEven, P128)
	require.True(t, sig.Has(SignalOverflow))
	require.Equal(t, KindInfinity, tri.Kind)
}
