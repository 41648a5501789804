package decimal

import (
	"github.com/trippwill/decimal/internal/bid"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/dpd"
)

// Decimal128 is the cohort-preserving IEEE 754-2008 decimal128 interchange
// form; see Decimal64's doc comment for the delegation rationale.
type Decimal128 struct {
	bits bid.Bits128
}

func bidPack128(t components.Triple128) bid.Bits128 { return bid.Pack128(t) }

// DecimalFromBits128 wraps a raw BID bit pattern as a Decimal128.
func DecimalFromBits128(bits bid.Bits128) Decimal128 { return Decimal128{bits} }

// Bits128 returns the BID bit pattern.
func (d Decimal128) Bits128() bid.Bits128 { return d.bits }

// DecimalFromDPDBits128 decodes a DPD bit pattern into a Decimal128.
func DecimalFromDPDBits128(bits dpd.Bits128) Decimal128 {
	return Decimal128{bid.Pack128(dpd.Unpack128(bits))}
}

// DPDBits128 re-encodes the value in Densely Packed Decimal form.
func (d Decimal128) DPDBits128() dpd.Bits128 { return dpd.Pack128(d.ToFast().Triple()) }

func (d Decimal128) ToFast() Decimal128Fast { return Decimal128Fast{bid.Unpack128(d.bits)} }

// NewDecimal128 converts v to Decimal128 at ctx's precision and rounding.
func NewDecimal128(v int64, ctx *Context) (Decimal128, Signal) {
	f, sig := NewDecimal128Fast(v, ctx)
	return f.ToIEEE128(), sig
}

// Parse128 parses s into a Decimal128; see ParseFast128 for the grammar.
func Parse128(s string, ctx *Context) (Decimal128, error) {
	f, err := ParseFast128(s, ctx)
	if err != nil {
		return Decimal128{}, err
	}
	return f.ToIEEE128(), nil
}

func (d Decimal128) IsZero() bool { return d.ToFast().IsZero() }
func (d Decimal128) IsNaN() bool  { return d.ToFast().IsNaN() }
func (d Decimal128) IsInf() bool  { return d.ToFast().IsInf() }
func (d Decimal128) Sign() bool   { return d.ToFast().Sign() }

func (d Decimal128) String() string { return d.ToFast().String() }

func (d Decimal128) Add(o Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Add(o.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) Sub(o Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Sub(o.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) Mul(o Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Mul(o.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) Quo(o Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Quo(o.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) Rem(o Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Rem(o.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) FMA(b, c Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().FMA(b.ToFast(), c.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) Neg() Decimal128 { return d.ToFast().Neg().ToIEEE128() }
func (d Decimal128) Abs() Decimal128 { return d.ToFast().Abs().ToIEEE128() }

func (d Decimal128) Cmp(o Decimal128) (cmp int, ok bool) { return d.ToFast().Cmp(o.ToFast()) }

func (d Decimal128) Exp(ctx *Context) Decimal128   { return d.ToFast().Exp(ctx).ToIEEE128() }
func (d Decimal128) Expm1(ctx *Context) Decimal128 { return d.ToFast().Expm1(ctx).ToIEEE128() }
func (d Decimal128) Log(ctx *Context) Decimal128   { return d.ToFast().Log(ctx).ToIEEE128() }
func (d Decimal128) Log1p(ctx *Context) Decimal128 { return d.ToFast().Log1p(ctx).ToIEEE128() }
func (d Decimal128) Log10(ctx *Context) Decimal128 { return d.ToFast().Log10(ctx).ToIEEE128() }
func (d Decimal128) Log2(ctx *Context) Decimal128  { return d.ToFast().Log2(ctx).ToIEEE128() }
func (d Decimal128) Sin(ctx *Context) Decimal128   { return d.ToFast().Sin(ctx).ToIEEE128() }
func (d Decimal128) Cos(ctx *Context) Decimal128   { return d.ToFast().Cos(ctx).ToIEEE128() }
func (d Decimal128) Tan(ctx *Context) Decimal128   { return d.ToFast().Tan(ctx).ToIEEE128() }
func (d Decimal128) Sinh(ctx *Context) Decimal128  { return d.ToFast().Sinh(ctx).ToIEEE128() }
func (d Decimal128) Cosh(ctx *Context) Decimal128  { return d.ToFast().Cosh(ctx).ToIEEE128() }
func (d Decimal128) Tanh(ctx *Context) Decimal128  { return d.ToFast().Tanh(ctx).ToIEEE128() }
func (d Decimal128) Asin(ctx *Context) Decimal128  { return d.ToFast().Asin(ctx).ToIEEE128() }
func (d Decimal128) Acos(ctx *Context) Decimal128  { return d.ToFast().Acos(ctx).ToIEEE128() }
func (d Decimal128) Atan(ctx *Context) Decimal128  { return d.ToFast().Atan(ctx).ToIEEE128() }
func (d Decimal128) Sqrt(ctx *Context) Decimal128  { return d.ToFast().Sqrt(ctx).ToIEEE128() }
func (d Decimal128) Cbrt(ctx *Context) Decimal128  { return d.ToFast().Cbrt(ctx).ToIEEE128() }
func (d Decimal128) Gamma(ctx *Context) Decimal128  { return d.ToFast().Gamma(ctx).ToIEEE128() }
func (d Decimal128) Lgamma(ctx *Context) Decimal128 { return d.ToFast().Lgamma(ctx).ToIEEE128() }
func (d Decimal128) Erf(ctx *Context) Decimal128   { return d.ToFast().Erf(ctx).ToIEEE128() }
func (d Decimal128) Erfc(ctx *Context) Decimal128  { return d.ToFast().Erfc(ctx).ToIEEE128() }
func (d Decimal128) BesselJ0(ctx *Context) Decimal128 { return d.ToFast().BesselJ0(ctx).ToIEEE128() }
func (d Decimal128) BesselJ1(ctx *Context) Decimal128 { return d.ToFast().BesselJ1(ctx).ToIEEE128() }
func (d Decimal128) BesselY0(ctx *Context) Decimal128 { return d.ToFast().BesselY0(ctx).ToIEEE128() }
func (d Decimal128) BesselY1(ctx *Context) Decimal128 { return d.ToFast().BesselY1(ctx).ToIEEE128() }
func (d Decimal128) EllipticK(ctx *Context) Decimal128 {
	return d.ToFast().EllipticK(ctx).ToIEEE128()
}
func (d Decimal128) EllipticE(ctx *Context) Decimal128 {
	return d.ToFast().EllipticE(ctx).ToIEEE128()
}
func (d Decimal128) RiemannZeta(ctx *Context) Decimal128 {
	return d.ToFast().RiemannZeta(ctx).ToIEEE128()
}

func (d Decimal128) Atan2(x Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Atan2(x.ToFast(), ctx).ToIEEE128()
}
func (d Decimal128) Pow(y Decimal128, ctx *Context) Decimal128 {
	return d.ToFast().Pow(y.ToFast(), ctx).ToIEEE128()
}
