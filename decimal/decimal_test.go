package decimal

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/trippwill/decimal/internal/components"
)

func TestParseFast64RoundTrip(t *testing.T) {
	ctx := DefaultContext(components.P64)
	d, err := ParseFast64("123.45", ctx)
	require.NoError(t, err)
	require.Equal(t, "123.45", d.String())
	require.False(t, d.IsZero())
	require.False(t, d.IsNaN())
}

func TestParseFast64Special(t *testing.T) {
	ctx := DefaultContext(components.P64)

	inf, err := ParseFast64("Infinity", ctx)
	require.NoError(t, err)
	require.True(t, inf.IsInf())

	nan, err := ParseFast64("NaN", ctx)
	require.NoError(t, err)
	require.True(t, nan.IsNaN())
}

func TestParseFast64InvalidSyntax(t *testing.T) {
	ctx := DefaultContext(components.P64)
	_, err := ParseFast64("not-a-number", ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidSyntax)
}

func TestDecimal64Arithmetic(t *testing.T) {
	ctx := DefaultContext(components.P64)
	a, err := ParseFast64("100.00", ctx)
	require.NoError(t, err)
	b, err := ParseFast64("200.00", ctx)
	require.NoError(t, err)

	sum := a.Add(b, ctx)
	require.Equal(t, "300", sum.String())

	diff := b.Sub(a, ctx)
	require.Equal(t, "100", diff.String())

	prod := a.Mul(b, ctx)
	require.Equal(t, "2e+4", prod.String())
}

func TestDecimal64FastIEEERoundTrip(t *testing.T) {
	ctx := DefaultContext(components.P64)
	f, err := ParseFast64("42.5", ctx)
	require.NoError(t, err)

	ieee := f.ToIEEE64()
	back := ieee.ToFast()
	require.Equal(t, f.String(), back.String())
	if diff := cmp.Diff(f.t, back.t); diff != "" {
		t.Errorf("Triple64 round trip through IEEE form diff (-want +got):\n%s", diff)
	}

	bits := ieee.Bits64()
	require.Equal(t, bits, DecimalFromBits64(bits).Bits64())
}

func TestDecimal64DPDRoundTrip(t *testing.T) {
	ctx := DefaultContext(components.P64)
	f, err := ParseFast64("-7.125", ctx)
	require.NoError(t, err)
	ieee := f.ToIEEE64()

	dpdBits := ieee.DPDBits64()
	back := DecimalFromDPDBits64(dpdBits)
	require.Equal(t, ieee.String(), back.String())
}

func TestDecimal64Compare(t *testing.T) {
	ctx := DefaultContext(components.P64)
	a, _ := ParseFast64("1.5", ctx)
	b, _ := ParseFast64("2.5", ctx)

	cmp, ok := a.Cmp(b)
	require.True(t, ok)
	require.Equal(t, -1, cmp)

	nan := NaNFast64()
	_, ok = a.Cmp(nan)
	require.False(t, ok)
}

func TestDecimal64Math(t *testing.T) {
	ctx := DefaultContext(components.P64)
	zero, _ := ParseFast64("0", ctx)
	require.Equal(t, "1", zero.Exp(ctx).String())

	one, _ := ParseFast64("1", ctx)
	require.Equal(t, "0", one.Log(ctx).String())

	four, _ := ParseFast64("4", ctx)
	require.Equal(t, "2", four.Sqrt(ctx).String())

	neg, _ := ParseFast64("-1", ctx)
	_ = neg.Sqrt(ctx)
	require.True(t, ctx.Signals().Has(SignalInvalidOperation))
}

func TestDecimal32And128(t *testing.T) {
	ctx32 := DefaultContext(components.P32)
	a32, err := ParseFast32("10", ctx32)
	require.NoError(t, err)
	b32, err := ParseFast32("3", ctx32)
	require.NoError(t, err)
	sum32 := a32.Add(b32, ctx32)
	require.Equal(t, "13", sum32.String())

	ctx128 := DefaultContext(components.P128)
	a128, err := ParseFast128("10", ctx128)
	require.NoError(t, err)
	b128, err := ParseFast128("3", ctx128)
	require.NoError(t, err)
	sum128 := a128.Add(b128, ctx128)
	require.Equal(t, "13", sum128.String())
}

func TestNumbers64(t *testing.T) {
	require.Equal(t, "3.141592653589793", Numbers64.Pi.String())
}

func TestContextDefaults(t *testing.T) {
	var ctx *Context
	require.Equal(t, DefaultRounding(), ctx.rounding())
	require.Equal(t, components.P64, ctx.precision(components.P64))
	require.False(t, ctx.Trapped())
}

func TestFormatVerbs(t *testing.T) {
	ctx := DefaultContext(components.P64)
	d, err := ParseFast64("123.40", ctx)
	require.NoError(t, err)

	require.Equal(t, "123.4", fmt.Sprintf("%v", d))
	require.Equal(t, "1.234e+2", fmt.Sprintf("%e", d))
}
