package decimal

import (
	"github.com/trippwill/decimal/internal/arith"
	"github.com/trippwill/decimal/internal/charconv"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
	"github.com/trippwill/decimal/internal/mathfn"
)

// Decimal32Fast is the canonicalized fast form of a 32-bit decimal; see
// Decimal64Fast's doc comment for the cohort-free rationale.
type Decimal32Fast struct {
	t components.Triple32
}

func ZeroFast32(sign bool) Decimal32Fast     { return Decimal32Fast{components.Zero32(sign)} }
func InfinityFast32(sign bool) Decimal32Fast { return Decimal32Fast{components.Infinity32(sign)} }
func NaNFast32() Decimal32Fast               { return Decimal32Fast{components.QuietNaN32(false)} }

// NewDecimal32Fast converts an int64 to Decimal32Fast at ctx's precision
// (components.P32 if ctx is nil or unset), rounding with ctx's mode.
func NewDecimal32Fast(v int64, ctx *Context) (Decimal32Fast, Signal) {
	t, sig := conv.FromInt64_32(v, ctx.rounding(), ctx.precision(components.P32))
	return Decimal32Fast{t}, sig
}

// ParseFast32 parses s into a Decimal32Fast; FromChars32 always normalizes
// to the full P32 precision, so a ctx asking for fewer digits re-rounds the
// result down to ctx's precision and mode.
func ParseFast32(s string, ctx *Context) (Decimal32Fast, error) {
	t, _, status := charconv.FromChars32(s, ctx.rounding())
	if err := parseError(status, s); err != nil {
		return Decimal32Fast{}, err
	}
	if p := ctx.precision(components.P32); t.Kind == components.KindFinite && p < components.P32 {
		t, _ = components.Normalize32(t.Sign, uint64(t.Significand), t.Exponent, ctx.rounding(), p)
	}
	return Decimal32Fast{t}, nil
}

func (d Decimal32Fast) IsZero() bool { return d.t.IsZero() }
func (d Decimal32Fast) IsNaN() bool  { return d.t.Kind.IsNaN() }
func (d Decimal32Fast) IsInf() bool  { return d.t.Kind == components.KindInfinity }
func (d Decimal32Fast) Sign() bool   { return d.t.Sign }

func (d Decimal32Fast) Triple() components.Triple32 { return d.t }

func (d Decimal32Fast) ToIEEE32() Decimal32 { return Decimal32{bidPack32(d.t)} }

func (d Decimal32Fast) String() string {
	return charconv.ToChars32(d.t, charconv.FormatGeneral, -1)
}

func (d Decimal32Fast) Add(o Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := arith.Add32(d.t, o.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) Sub(o Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := arith.Sub32(d.t, o.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) Mul(o Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := arith.Mul32(d.t, o.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) Quo(o Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := arith.Quo32(d.t, o.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) Rem(o Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := arith.Rem32(d.t, o.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) FMA(b, c Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := arith.FMA32(d.t, b.t, c.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) Neg() Decimal32Fast { return Decimal32Fast{arith.Neg32(d.t)} }
func (d Decimal32Fast) Abs() Decimal32Fast { return Decimal32Fast{arith.Abs32(d.t)} }

func (d Decimal32Fast) Cmp(o Decimal32Fast) (cmp int, ok bool) { return arith.Compare32(d.t, o.t) }

func (d Decimal32Fast) Exp(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Exp32) }
func (d Decimal32Fast) Expm1(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.Expm1_32) }
func (d Decimal32Fast) Log(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Log32) }
func (d Decimal32Fast) Log1p(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.Log1p32) }
func (d Decimal32Fast) Log10(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.Log10_32) }
func (d Decimal32Fast) Log2(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Log2_32) }
func (d Decimal32Fast) Sin(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Sin32) }
func (d Decimal32Fast) Cos(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Cos32) }
func (d Decimal32Fast) Tan(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Tan32) }
func (d Decimal32Fast) Sinh(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Sinh32) }
func (d Decimal32Fast) Cosh(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Cosh32) }
func (d Decimal32Fast) Tanh(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Tanh32) }
func (d Decimal32Fast) Asin(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Asin32) }
func (d Decimal32Fast) Acos(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Acos32) }
func (d Decimal32Fast) Atan(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Atan32) }
func (d Decimal32Fast) Sqrt(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Sqrt32) }
func (d Decimal32Fast) Cbrt(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Cbrt32) }
func (d Decimal32Fast) Gamma(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Gamma32) }
func (d Decimal32Fast) Lgamma(ctx *Context) Decimal32Fast  { return unary32(d, ctx, mathfn.Lgamma32) }
func (d Decimal32Fast) Erf(ctx *Context) Decimal32Fast    { return unary32(d, ctx, mathfn.Erf32) }
func (d Decimal32Fast) Erfc(ctx *Context) Decimal32Fast   { return unary32(d, ctx, mathfn.Erfc32) }
func (d Decimal32Fast) BesselJ0(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.BesselJ0_32) }
func (d Decimal32Fast) BesselJ1(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.BesselJ1_32) }
func (d Decimal32Fast) BesselY0(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.BesselY0_32) }
func (d Decimal32Fast) BesselY1(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.BesselY1_32) }
func (d Decimal32Fast) EllipticK(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.EllipticK32) }
func (d Decimal32Fast) EllipticE(ctx *Context) Decimal32Fast { return unary32(d, ctx, mathfn.EllipticE32) }
func (d Decimal32Fast) RiemannZeta(ctx *Context) Decimal32Fast {
	return unary32(d, ctx, mathfn.RiemannZeta32)
}

func (d Decimal32Fast) Atan2(x Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := mathfn.Atan2_32(d.t, x.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

func (d Decimal32Fast) Pow(y Decimal32Fast, ctx *Context) Decimal32Fast {
	r, sig := mathfn.Pow32(d.t, y.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}

type unaryFn32 func(components.Triple32, components.Rounding, int) (components.Triple32, components.Signal)

func unary32(d Decimal32Fast, ctx *Context, fn unaryFn32) Decimal32Fast {
	r, sig := fn(d.t, ctx.rounding(), ctx.precision(components.P32))
	ctx.Raise(sig)
	return Decimal32Fast{r}
}
