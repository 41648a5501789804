package decimal

import (
	"github.com/trippwill/decimal/internal/arith"
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/charconv"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
	"github.com/trippwill/decimal/internal/mathfn"
)

// Decimal128Fast is the canonicalized fast form of a 128-bit decimal; see
// Decimal64Fast's doc comment for the cohort-free rationale.
type Decimal128Fast struct {
	t components.Triple128
}

func ZeroFast128(sign bool) Decimal128Fast     { return Decimal128Fast{components.Zero128(sign)} }
func InfinityFast128(sign bool) Decimal128Fast { return Decimal128Fast{components.Infinity128(sign)} }
func NaNFast128() Decimal128Fast               { return Decimal128Fast{components.QuietNaN128(false)} }

// NewDecimal128Fast converts an int64 to Decimal128Fast at ctx's precision
// (components.P128 if ctx is nil or unset), rounding with ctx's mode.
func NewDecimal128Fast(v int64, ctx *Context) (Decimal128Fast, Signal) {
	t, sig := conv.FromInt64_128(v, ctx.rounding(), ctx.precision(components.P128))
	return Decimal128Fast{t}, sig
}

// ParseFast128 parses s into a Decimal128Fast; FromChars128 always
// normalizes to the full P128 precision, so a ctx asking for fewer digits
// re-rounds the result down to ctx's precision and mode.
func ParseFast128(s string, ctx *Context) (Decimal128Fast, error) {
	t, _, status := charconv.FromChars128(s, ctx.rounding())
	if err := parseError(status, s); err != nil {
		return Decimal128Fast{}, err
	}
	if p := ctx.precision(components.P128); t.Kind == components.KindFinite && p < components.P128 {
		t, _ = components.Normalize128(t.Sign, bigint.U256FromU128(t.Significand), t.Exponent, ctx.rounding(), p)
	}
	return Decimal128Fast{t}, nil
}

func (d Decimal128Fast) IsZero() bool { return d.t.IsZero() }
func (d Decimal128Fast) IsNaN() bool  { return d.t.Kind.IsNaN() }
func (d Decimal128Fast) IsInf() bool  { return d.t.Kind == components.KindInfinity }
func (d Decimal128Fast) Sign() bool   { return d.t.Sign }

func (d Decimal128Fast) Triple() components.Triple128 { return d.t }

func (d Decimal128Fast) ToIEEE128() Decimal128 { return Decimal128{bidPack128(d.t)} }

func (d Decimal128Fast) String() string {
	return charconv.ToChars128(d.t, charconv.FormatGeneral, -1)
}

func (d Decimal128Fast) Add(o Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := arith.Add128(d.t, o.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) Sub(o Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := arith.Sub128(d.t, o.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) Mul(o Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := arith.Mul128(d.t, o.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) Quo(o Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := arith.Quo128(d.t, o.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) Rem(o Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := arith.Rem128(d.t, o.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) FMA(b, c Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := arith.FMA128(d.t, b.t, c.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) Neg() Decimal128Fast { return Decimal128Fast{arith.Neg128(d.t)} }
func (d Decimal128Fast) Abs() Decimal128Fast { return Decimal128Fast{arith.Abs128(d.t)} }

func (d Decimal128Fast) Cmp(o Decimal128Fast) (cmp int, ok bool) { return arith.Compare128(d.t, o.t) }

func (d Decimal128Fast) Exp(ctx *Context) Decimal128Fast   { return unary128(d, ctx, mathfn.Exp128) }
func (d Decimal128Fast) Expm1(ctx *Context) Decimal128Fast { return unary128(d, ctx, mathfn.Expm1_128) }
func (d Decimal128Fast) Log(ctx *Context) Decimal128Fast   { return unary128(d, ctx, mathfn.Log128) }
func (d Decimal128Fast) Log1p(ctx *Context) Decimal128Fast { return unary128(d, ctx, mathfn.Log1p128) }
func (d Decimal128Fast) Log10(ctx *Context) Decimal128Fast { return unary128(d, ctx, mathfn.Log10_128) }
func (d Decimal128Fast) Log2(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Log2_128) }
func (d Decimal128Fast) Sin(ctx *Context) Decimal128Fast   { return unary128(d, ctx, mathfn.Sin128) }
func (d Decimal128Fast) Cos(ctx *Context) Decimal128Fast   { return unary128(d, ctx, mathfn.Cos128) }
func (d Decimal128Fast) Tan(ctx *Context) Decimal128Fast   { return unary128(d, ctx, mathfn.Tan128) }
func (d Decimal128Fast) Sinh(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Sinh128) }
func (d Decimal128Fast) Cosh(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Cosh128) }
func (d Decimal128Fast) Tanh(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Tanh128) }
func (d Decimal128Fast) Asin(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Asin128) }
func (d Decimal128Fast) Acos(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Acos128) }
func (d Decimal128Fast) Atan(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Atan128) }
func (d Decimal128Fast) Sqrt(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Sqrt128) }
func (d Decimal128Fast) Cbrt(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Cbrt128) }
func (d Decimal128Fast) Gamma(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Gamma128) }
func (d Decimal128Fast) Lgamma(ctx *Context) Decimal128Fast { return unary128(d, ctx, mathfn.Lgamma128) }
func (d Decimal128Fast) Erf(ctx *Context) Decimal128Fast   { return unary128(d, ctx, mathfn.Erf128) }
func (d Decimal128Fast) Erfc(ctx *Context) Decimal128Fast  { return unary128(d, ctx, mathfn.Erfc128) }
func (d Decimal128Fast) BesselJ0(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.BesselJ0_128)
}
func (d Decimal128Fast) BesselJ1(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.BesselJ1_128)
}
func (d Decimal128Fast) BesselY0(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.BesselY0_128)
}
func (d Decimal128Fast) BesselY1(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.BesselY1_128)
}
func (d Decimal128Fast) EllipticK(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.EllipticK128)
}
func (d Decimal128Fast) EllipticE(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.EllipticE128)
}
func (d Decimal128Fast) RiemannZeta(ctx *Context) Decimal128Fast {
	return unary128(d, ctx, mathfn.RiemannZeta128)
}

func (d Decimal128Fast) Atan2(x Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := mathfn.Atan2_128(d.t, x.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

func (d Decimal128Fast) Pow(y Decimal128Fast, ctx *Context) Decimal128Fast {
	r, sig := mathfn.Pow128(d.t, y.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}

type unaryFn128 func(components.Triple128, components.Rounding, int) (components.Triple128, components.Signal)

func unary128(d Decimal128Fast, ctx *Context, fn unaryFn128) Decimal128Fast {
	r, sig := fn(d.t, ctx.rounding(), ctx.precision(components.P128))
	ctx.Raise(sig)
	return Decimal128Fast{r}
}
