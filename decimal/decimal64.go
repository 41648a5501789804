package decimal

import (
	"github.com/trippwill/decimal/internal/bid"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/dpd"
)

// Decimal64 is the cohort-preserving IEEE 754-2008 decimal64 interchange
// form: a bit-exact BID encoding that round-trips through Bits64/DPDBits64
// without renormalizing the cohort. Arithmetic and the math kernel are not
// duplicated here: every operation decodes to Decimal64Fast, computes, and
// re-encodes, since the cohort a fresh arithmetic result takes on is
// already canonical (IEEE 754-2008 §5 only requires cohort preservation
// through encode/decode, not through arithmetic).
type Decimal64 struct {
	bits uint64
}

func bidPack64(t components.Triple64) uint64 { return bid.Pack64(t) }

// DecimalFromBits64 wraps a raw BID bit pattern as a Decimal64.
func DecimalFromBits64(bits uint64) Decimal64 { return Decimal64{bits} }

// Bits64 returns the BID bit pattern.
func (d Decimal64) Bits64() uint64 { return d.bits }

// DecimalFromDPDBits64 decodes a DPD bit pattern into a Decimal64.
func DecimalFromDPDBits64(bits uint64) Decimal64 {
	return Decimal64{bid.Pack64(dpd.Unpack64(bits))}
}

// DPDBits64 re-encodes the value in Densely Packed Decimal form.
func (d Decimal64) DPDBits64() uint64 { return dpd.Pack64(d.ToFast().Triple()) }

func (d Decimal64) ToFast() Decimal64Fast { return Decimal64Fast{bid.Unpack64(d.bits)} }

// NewDecimal64 converts v to Decimal64 at ctx's precision and rounding.
func NewDecimal64(v int64, ctx *Context) (Decimal64, Signal) {
	f, sig := NewDecimal64Fast(v, ctx)
	return f.ToIEEE64(), sig
}

// Parse64 parses s into a Decimal64; see ParseFast64 for the grammar.
func Parse64(s string, ctx *Context) (Decimal64, error) {
	f, err := ParseFast64(s, ctx)
	if err != nil {
		return Decimal64{}, err
	}
	return f.ToIEEE64(), nil
}

func (d Decimal64) IsZero() bool { return d.ToFast().IsZero() }
func (d Decimal64) IsNaN() bool  { return d.ToFast().IsNaN() }
func (d Decimal64) IsInf() bool  { return d.ToFast().IsInf() }
func (d Decimal64) Sign() bool   { return d.ToFast().Sign() }

func (d Decimal64) String() string { return d.ToFast().String() }

func (d Decimal64) Add(o Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Add(o.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) Sub(o Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Sub(o.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) Mul(o Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Mul(o.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) Quo(o Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Quo(o.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) Rem(o Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Rem(o.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) FMA(b, c Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().FMA(b.ToFast(), c.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) Neg() Decimal64 { return d.ToFast().Neg().ToIEEE64() }
func (d Decimal64) Abs() Decimal64 { return d.ToFast().Abs().ToIEEE64() }

func (d Decimal64) Cmp(o Decimal64) (cmp int, ok bool) { return d.ToFast().Cmp(o.ToFast()) }

func (d Decimal64) Exp(ctx *Context) Decimal64   { return d.ToFast().Exp(ctx).ToIEEE64() }
func (d Decimal64) Expm1(ctx *Context) Decimal64 { return d.ToFast().Expm1(ctx).ToIEEE64() }
func (d Decimal64) Log(ctx *Context) Decimal64   { return d.ToFast().Log(ctx).ToIEEE64() }
func (d Decimal64) Log1p(ctx *Context) Decimal64 { return d.ToFast().Log1p(ctx).ToIEEE64() }
func (d Decimal64) Log10(ctx *Context) Decimal64 { return d.ToFast().Log10(ctx).ToIEEE64() }
func (d Decimal64) Log2(ctx *Context) Decimal64  { return d.ToFast().Log2(ctx).ToIEEE64() }
func (d Decimal64) Sin(ctx *Context) Decimal64   { return d.ToFast().Sin(ctx).ToIEEE64() }
func (d Decimal64) Cos(ctx *Context) Decimal64   { return d.ToFast().Cos(ctx).ToIEEE64() }
func (d Decimal64) Tan(ctx *Context) Decimal64   { return d.ToFast().Tan(ctx).ToIEEE64() }
func (d Decimal64) Sinh(ctx *Context) Decimal64  { return d.ToFast().Sinh(ctx).ToIEEE64() }
func (d Decimal64) Cosh(ctx *Context) Decimal64  { return d.ToFast().Cosh(ctx).ToIEEE64() }
func (d Decimal64) Tanh(ctx *Context) Decimal64  { return d.ToFast().Tanh(ctx).ToIEEE64() }
func (d Decimal64) Asin(ctx *Context) Decimal64  { return d.ToFast().Asin(ctx).ToIEEE64() }
func (d Decimal64) Acos(ctx *Context) Decimal64  { return d.ToFast().Acos(ctx).ToIEEE64() }
func (d Decimal64) Atan(ctx *Context) Decimal64  { return d.ToFast().Atan(ctx).ToIEEE64() }
func (d Decimal64) Sqrt(ctx *Context) Decimal64  { return d.ToFast().Sqrt(ctx).ToIEEE64() }
func (d Decimal64) Cbrt(ctx *Context) Decimal64  { return d.ToFast().Cbrt(ctx).ToIEEE64() }
func (d Decimal64) Gamma(ctx *Context) Decimal64   { return d.ToFast().Gamma(ctx).ToIEEE64() }
func (d Decimal64) Lgamma(ctx *Context) Decimal64  { return d.ToFast().Lgamma(ctx).ToIEEE64() }
func (d Decimal64) Erf(ctx *Context) Decimal64    { return d.ToFast().Erf(ctx).ToIEEE64() }
func (d Decimal64) Erfc(ctx *Context) Decimal64   { return d.ToFast().Erfc(ctx).ToIEEE64() }
func (d Decimal64) BesselJ0(ctx *Context) Decimal64 { return d.ToFast().BesselJ0(ctx).ToIEEE64() }
func (d Decimal64) BesselJ1(ctx *Context) Decimal64 { return d.ToFast().BesselJ1(ctx).ToIEEE64() }
func (d Decimal64) BesselY0(ctx *Context) Decimal64 { return d.ToFast().BesselY0(ctx).ToIEEE64() }
func (d Decimal64) BesselY1(ctx *Context) Decimal64 { return d.ToFast().BesselY1(ctx).ToIEEE64() }
func (d Decimal64) EllipticK(ctx *Context) Decimal64 { return d.ToFast().EllipticK(ctx).ToIEEE64() }
func (d Decimal64) EllipticE(ctx *Context) Decimal64 { return d.ToFast().EllipticE(ctx).ToIEEE64() }
func (d Decimal64) RiemannZeta(ctx *Context) Decimal64 { return d.ToFast().RiemannZeta(ctx).ToIEEE64() }

func (d Decimal64) Atan2(x Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Atan2(x.ToFast(), ctx).ToIEEE64()
}
func (d Decimal64) Pow(y Decimal64, ctx *Context) Decimal64 {
	return d.ToFast().Pow(y.ToFast(), ctx).ToIEEE64()
}
