package decimal

import (
	"github.com/trippwill/decimal/internal/bid"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/dpd"
)

// Decimal32 is the cohort-preserving IEEE 754-2008 decimal32 interchange
// form; see Decimal64's doc comment for the delegation rationale.
type Decimal32 struct {
	bits uint32
}

func bidPack32(t components.Triple32) uint32 { return bid.Pack32(t) }

// DecimalFromBits32 wraps a raw BID bit pattern as a Decimal32.
func DecimalFromBits32(bits uint32) Decimal32 { return Decimal32{bits} }

// Bits32 returns the BID bit pattern.
func (d Decimal32) Bits32() uint32 { return d.bits }

// DecimalFromDPDBits32 decodes a DPD bit pattern into a Decimal32.
func DecimalFromDPDBits32(bits uint32) Decimal32 {
	return Decimal32{bid.Pack32(dpd.Unpack32(bits))}
}

// DPDBits32 re-encodes the value in Densely Packed Decimal form.
func (d Decimal32) DPDBits32() uint32 { return dpd.Pack32(d.ToFast().Triple()) }

func (d Decimal32) ToFast() Decimal32Fast { return Decimal32Fast{bid.Unpack32(d.bits)} }

// NewDecimal32 converts v to Decimal32 at ctx's precision and rounding.
func NewDecimal32(v int64, ctx *Context) (Decimal32, Signal) {
	f, sig := NewDecimal32Fast(v, ctx)
	return f.ToIEEE32(), sig
}

// Parse32 parses s into a Decimal32; see ParseFast32 for the grammar.
func Parse32(s string, ctx *Context) (Decimal32, error) {
	f, err := ParseFast32(s, ctx)
	if err != nil {
		return Decimal32{}, err
	}
	return f.ToIEEE32(), nil
}

func (d Decimal32) IsZero() bool { return d.ToFast().IsZero() }
func (d Decimal32) IsNaN() bool  { return d.ToFast().IsNaN() }
func (d Decimal32) IsInf() bool  { return d.ToFast().IsInf() }
func (d Decimal32) Sign() bool   { return d.ToFast().Sign() }

func (d Decimal32) String() string { return d.ToFast().String() }

func (d Decimal32) Add(o Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Add(o.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) Sub(o Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Sub(o.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) Mul(o Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Mul(o.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) Quo(o Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Quo(o.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) Rem(o Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Rem(o.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) FMA(b, c Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().FMA(b.ToFast(), c.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) Neg() Decimal32 { return d.ToFast().Neg().ToIEEE32() }
func (d Decimal32) Abs() Decimal32 { return d.ToFast().Abs().ToIEEE32() }

func (d Decimal32) Cmp(o Decimal32) (cmp int, ok bool) { return d.ToFast().Cmp(o.ToFast()) }

func (d Decimal32) Exp(ctx *Context) Decimal32   { return d.ToFast().Exp(ctx).ToIEEE32() }
func (d Decimal32) Expm1(ctx *Context) Decimal32 { return d.ToFast().Expm1(ctx).ToIEEE32() }
func (d Decimal32) Log(ctx *Context) Decimal32   { return d.ToFast().Log(ctx).ToIEEE32() }
func (d Decimal32) Log1p(ctx *Context) Decimal32 { return d.ToFast().Log1p(ctx).ToIEEE32() }
func (d Decimal32) Log10(ctx *Context) Decimal32 { return d.ToFast().Log10(ctx).ToIEEE32() }
func (d Decimal32) Log2(ctx *Context) Decimal32  { return d.ToFast().Log2(ctx).ToIEEE32() }
func (d Decimal32) Sin(ctx *Context) Decimal32   { return d.ToFast().Sin(ctx).ToIEEE32() }
func (d Decimal32) Cos(ctx *Context) Decimal32   { return d.ToFast().Cos(ctx).ToIEEE32() }
func (d Decimal32) Tan(ctx *Context) Decimal32   { return d.ToFast().Tan(ctx).ToIEEE32() }
func (d Decimal32) Sinh(ctx *Context) Decimal32  { return d.ToFast().Sinh(ctx).ToIEEE32() }
func (d Decimal32) Cosh(ctx *Context) Decimal32  { return d.ToFast().Cosh(ctx).ToIEEE32() }
func (d Decimal32) Tanh(ctx *Context) Decimal32  { return d.ToFast().Tanh(ctx).ToIEEE32() }
func (d Decimal32) Asin(ctx *Context) Decimal32  { return d.ToFast().Asin(ctx).ToIEEE32() }
func (d Decimal32) Acos(ctx *Context) Decimal32  { return d.ToFast().Acos(ctx).ToIEEE32() }
func (d Decimal32) Atan(ctx *Context) Decimal32  { return d.ToFast().Atan(ctx).ToIEEE32() }
func (d Decimal32) Sqrt(ctx *Context) Decimal32  { return d.ToFast().Sqrt(ctx).ToIEEE32() }
func (d Decimal32) Cbrt(ctx *Context) Decimal32  { return d.ToFast().Cbrt(ctx).ToIEEE32() }
func (d Decimal32) Gamma(ctx *Context) Decimal32   { return d.ToFast().Gamma(ctx).ToIEEE32() }
func (d Decimal32) Lgamma(ctx *Context) Decimal32  { return d.ToFast().Lgamma(ctx).ToIEEE32() }
func (d Decimal32) Erf(ctx *Context) Decimal32    { return d.ToFast().Erf(ctx).ToIEEE32() }
func (d Decimal32) Erfc(ctx *Context) Decimal32   { return d.ToFast().Erfc(ctx).ToIEEE32() }
func (d Decimal32) BesselJ0(ctx *Context) Decimal32 { return d.ToFast().BesselJ0(ctx).ToIEEE32() }
func (d Decimal32) BesselJ1(ctx *Context) Decimal32 { return d.ToFast().BesselJ1(ctx).ToIEEE32() }
func (d Decimal32) BesselY0(ctx *Context) Decimal32 { return d.ToFast().BesselY0(ctx).ToIEEE32() }
func (d Decimal32) BesselY1(ctx *Context) Decimal32 { return d.ToFast().BesselY1(ctx).ToIEEE32() }
func (d Decimal32) EllipticK(ctx *Context) Decimal32 { return d.ToFast().EllipticK(ctx).ToIEEE32() }
func (d Decimal32) EllipticE(ctx *Context) Decimal32 { return d.ToFast().EllipticE(ctx).ToIEEE32() }
func (d Decimal32) RiemannZeta(ctx *Context) Decimal32 { return d.ToFast().RiemannZeta(ctx).ToIEEE32() }

func (d Decimal32) Atan2(x Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Atan2(x.ToFast(), ctx).ToIEEE32()
}
func (d Decimal32) Pow(y Decimal32, ctx *Context) Decimal32 {
	return d.ToFast().Pow(y.ToFast(), ctx).ToIEEE32()
}
