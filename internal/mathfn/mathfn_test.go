package mathfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
)

func mustInt32(v int64) components.Triple32 {
	t, _ := conv.FromInt64_32(v, components.RoundTiesToEven, components.P32)
	return t
}

func TestExp32Zero(t *testing.T) {
	got, sig := Exp32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.InDelta(t, 1.0, conv.ToFloat64_32(got), 1e-6)
}

func TestExp32One(t *testing.T) {
	got, _ := Exp32(mustInt32(1), components.RoundTiesToEven, components.P32)
	require.InDelta(t, math.E, conv.ToFloat64_32(got), 1e-5)
}

func TestLog32One(t *testing.T) {
	got, sig := Log32(mustInt32(1), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.InDelta(t, 0.0, conv.ToFloat64_32(got), 1e-6)
}

func TestLog32Negative(t *testing.T) {
	_, sig := Log32(mustInt32(-1), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
}

func TestLog32Zero(t *testing.T) {
	got, sig := Log32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalDivisionByZero))
	require.Equal(t, components.KindInfinity, got.Kind)
	require.True(t, got.Sign)
}

func TestSin32Zero(t *testing.T) {
	got, sig := Sin32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.InDelta(t, 0.0, conv.ToFloat64_32(got), 1e-6)
}

func TestCos32Zero(t *testing.T) {
	got, _ := Cos32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, 1.0, conv.ToFloat64_32(got), 1e-6)
}

func TestSqrt32Four(t *testing.T) {
	got, sig := Sqrt32(mustInt32(4), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.InDelta(t, 2.0, conv.ToFloat64_32(got), 1e-6)
}

func TestSqrt32Negative(t *testing.T) {
	_, sig := Sqrt32(mustInt32(-1), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
}

func TestCbrt32NegativeEight(t *testing.T) {
	got, _ := Cbrt32(mustInt32(-8), components.RoundTiesToEven, components.P32)
	require.InDelta(t, -2.0, conv.ToFloat64_32(got), 1e-6)
}

func TestGamma32Five(t *testing.T) {
	got, sig := Gamma32(mustInt32(5), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.InDelta(t, 24.0, conv.ToFloat64_32(got), 1e-3)
}

func TestGamma32PoleAtZero(t *testing.T) {
	_, sig := Gamma32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalDivisionByZero))
}

func TestErf32Zero(t *testing.T) {
	got, _ := Erf32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, 0.0, conv.ToFloat64_32(got), 1e-6)
}

func TestErf32Large(t *testing.T) {
	got, _ := Erf32(mustInt32(10), components.RoundTiesToEven, components.P32)
	require.InDelta(t, 1.0, conv.ToFloat64_32(got), 1e-6)
}

func TestBesselJ0_32Zero(t *testing.T) {
	got, _ := BesselJ0_32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, 1.0, conv.ToFloat64_32(got), 1e-6)
}

func TestBesselJ1_32Zero(t *testing.T) {
	got, _ := BesselJ1_32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, 0.0, conv.ToFloat64_32(got), 1e-6)
}

func TestBesselY0_32PoleAtZero(t *testing.T) {
	_, sig := BesselY0_32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalDivisionByZero))
}

func TestEllipticK32Zero(t *testing.T) {
	got, _ := EllipticK32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, math.Pi/2, conv.ToFloat64_32(got), 1e-6)
}

func TestEllipticE32Zero(t *testing.T) {
	got, _ := EllipticE32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, math.Pi/2, conv.ToFloat64_32(got), 1e-6)
}

func TestEllipticK32OutOfDomain(t *testing.T) {
	_, sig := EllipticK32(mustInt32(2), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
}

func TestRiemannZeta32Two(t *testing.T) {
	got, sig := RiemannZeta32(mustInt32(2), components.RoundTiesToEven, components.P32)
	require.Equal(t, components.SignalInexact, sig)
	require.InDelta(t, math.Pi*math.Pi/6, conv.ToFloat64_32(got), 1e-3)
}

func TestRiemannZeta32DomainError(t *testing.T) {
	_, sig := RiemannZeta32(mustInt32(1), components.RoundTiesToEven, components.P32)
	require.True(t, sig.Has(components.SignalInvalidOperation))
}

func TestAtan32One(t *testing.T) {
	got, _ := Atan32(mustInt32(1), components.RoundTiesToEven, components.P32)
	require.InDelta(t, math.Pi/4, conv.ToFloat64_32(got), 1e-6)
}

func TestAtan2_32Quadrants(t *testing.T) {
	got, _ := Atan2_32(mustInt32(1), mustInt32(1), components.RoundTiesToEven, components.P32)
	require.InDelta(t, math.Pi/4, conv.ToFloat64_32(got), 1e-6)
}

func TestAsin32One(t *testing.T) {
	got, _ := Asin32(mustInt32(1), components.RoundTiesToEven, components.P32)
	require.InDelta(t, math.Pi/2, conv.ToFloat64_32(got), 1e-6)
}

func TestPow32Basic(t *testing.T) {
	got, sig := Pow32(mustInt32(2), mustInt32(10), components.RoundTiesToEven, components.P32)
	require.Zero(t, sig)
	require.InDelta(t, 1024.0, conv.ToFloat64_32(got), 1e-2)
}

func TestSinhCoshTanh32Zero(t *testing.T) {
	sinh, _ := Sinh32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	cosh, _ := Cosh32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	tanh, _ := Tanh32(components.Zero32(false), components.RoundTiesToEven, components.P32)
	require.InDelta(t, 0.0, conv.ToFloat64_32(sinh), 1e-6)
	require.InDelta(t, 1.0, conv.ToFloat64_32(cosh), 1e-6)
	require.InDelta(t, 0.0, conv.ToFloat64_32(tanh), 1e-6)
}

func TestExp64One(t *testing.T) {
	in, _ := conv.FromInt64_64(1, components.RoundTiesToEven, components.P64)
	got, sig := Exp64(in, components.RoundTiesToEven, components.P64)
	require.Equal(t, components.SignalInexact, sig)
	require.InDelta(t, math.E, conv.ToFloat64_64(got), 1e-10)
}

func TestLog128One(t *testing.T) {
	in, _ := conv.FromInt64_128(1, components.RoundTiesToEven, components.P128)
	got, sig := Log128(in, components.RoundTiesToEven, components.P128)
	require.Zero(t, sig)
	require.InDelta(t, 0.0, conv.ToFloat64_128(got), 1e-20)
}

func TestSqrt128Four(t *testing.T) {
	in, _ := conv.FromInt64_128(4, components.RoundTiesToEven, components.P128)
	got, sig := Sqrt128(in, components.RoundTiesToEven, components.P128)
	require.Zero(t, sig)
	require.InDelta(t, 2.0, conv.ToFloat64_128(got), 1e-20)
}
