package decimal

import (
	"github.com/trippwill/decimal/internal/arith"
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/charconv"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
	"github.com/trippwill/decimal/internal/mathfn"
)

// Decimal64Fast is the canonicalized fast form of a 64-bit decimal: a
// components.Triple64 with no cohort (every value normalizes to the same
// significand/exponent pair each time it is produced), so equal values
// compare equal with plain Go equality and arithmetic never pays a
// pack/unpack round trip.
type Decimal64Fast struct {
	t components.Triple64
}

// ZeroFast64 returns signed zero.
func ZeroFast64(sign bool) Decimal64Fast { return Decimal64Fast{components.Zero64(sign)} }

// InfinityFast64 returns signed infinity.
func InfinityFast64(sign bool) Decimal64Fast { return Decimal64Fast{components.Infinity64(sign)} }

// NaNFast64 returns a quiet NaN.
func NaNFast64() Decimal64Fast { return Decimal64Fast{components.QuietNaN64(false)} }

// NewDecimal64Fast converts an int64 to Decimal64Fast at ctx's precision
// (components.P64 if ctx is nil or unset), rounding with ctx's mode.
func NewDecimal64Fast(v int64, ctx *Context) (Decimal64Fast, Signal) {
	t, sig := conv.FromInt64_64(v, ctx.rounding(), ctx.precision(components.P64))
	return Decimal64Fast{t}, sig
}

// ParseFast64 parses s (any charconv.Format grammar: scientific, fixed,
// inf/infinity, nan/nan(payload)) into a Decimal64Fast. FromChars64 always
// normalizes to the full P64 precision; when ctx asks for fewer digits the
// result is re-rounded down to ctx's precision and mode.
func ParseFast64(s string, ctx *Context) (Decimal64Fast, error) {
	t, _, status := charconv.FromChars64(s, ctx.rounding())
	if err := parseError(status, s); err != nil {
		return Decimal64Fast{}, err
	}
	if p := ctx.precision(components.P64); t.Kind == components.KindFinite && p < components.P64 {
		t, _ = components.Normalize64(t.Sign, bigint.U128FromUint64(t.Significand), t.Exponent, ctx.rounding(), p)
	}
	return Decimal64Fast{t}, nil
}

func (d Decimal64Fast) IsZero() bool { return d.t.IsZero() }
func (d Decimal64Fast) IsNaN() bool  { return d.t.Kind.IsNaN() }
func (d Decimal64Fast) IsInf() bool  { return d.t.Kind == components.KindInfinity }
func (d Decimal64Fast) Sign() bool   { return d.t.Sign }

func (d Decimal64Fast) Triple() components.Triple64 { return d.t }

// ToIEEE64 converts to the bit-exact IEEE form via BID encoding.
func (d Decimal64Fast) ToIEEE64() Decimal64 { return Decimal64{bidPack64(d.t)} }

func (d Decimal64Fast) String() string {
	return charconv.ToChars64(d.t, charconv.FormatGeneral, -1)
}

func (d Decimal64Fast) Add(o Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := arith.Add64(d.t, o.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) Sub(o Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := arith.Sub64(d.t, o.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) Mul(o Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := arith.Mul64(d.t, o.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) Quo(o Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := arith.Quo64(d.t, o.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) Rem(o Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := arith.Rem64(d.t, o.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) FMA(b, c Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := arith.FMA64(d.t, b.t, c.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) Neg() Decimal64Fast { return Decimal64Fast{arith.Neg64(d.t)} }
func (d Decimal64Fast) Abs() Decimal64Fast { return Decimal64Fast{arith.Abs64(d.t)} }

// Cmp returns -1/0/1, or ok=false if either operand is NaN (comparisons
// involving NaN are unordered per IEEE 754-2008).
func (d Decimal64Fast) Cmp(o Decimal64Fast) (cmp int, ok bool) { return arith.Compare64(d.t, o.t) }

func (d Decimal64Fast) Exp(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Exp64) }
func (d Decimal64Fast) Expm1(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Expm1_64) }
func (d Decimal64Fast) Log(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Log64) }
func (d Decimal64Fast) Log1p(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Log1p64) }
func (d Decimal64Fast) Log10(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Log10_64) }
func (d Decimal64Fast) Log2(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Log2_64) }
func (d Decimal64Fast) Sin(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Sin64) }
func (d Decimal64Fast) Cos(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Cos64) }
func (d Decimal64Fast) Tan(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Tan64) }
func (d Decimal64Fast) Sinh(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Sinh64) }
func (d Decimal64Fast) Cosh(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Cosh64) }
func (d Decimal64Fast) Tanh(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Tanh64) }
func (d Decimal64Fast) Asin(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Asin64) }
func (d Decimal64Fast) Acos(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Acos64) }
func (d Decimal64Fast) Atan(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Atan64) }
func (d Decimal64Fast) Sqrt(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Sqrt64) }
func (d Decimal64Fast) Cbrt(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Cbrt64) }
func (d Decimal64Fast) Gamma(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Gamma64) }
func (d Decimal64Fast) Lgamma(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.Lgamma64) }
func (d Decimal64Fast) Erf(ctx *Context) Decimal64Fast   { return unary64(d, ctx, mathfn.Erf64) }
func (d Decimal64Fast) Erfc(ctx *Context) Decimal64Fast  { return unary64(d, ctx, mathfn.Erfc64) }
func (d Decimal64Fast) BesselJ0(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.BesselJ0_64) }
func (d Decimal64Fast) BesselJ1(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.BesselJ1_64) }
func (d Decimal64Fast) BesselY0(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.BesselY0_64) }
func (d Decimal64Fast) BesselY1(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.BesselY1_64) }
func (d Decimal64Fast) EllipticK(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.EllipticK64) }
func (d Decimal64Fast) EllipticE(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.EllipticE64) }
func (d Decimal64Fast) RiemannZeta(ctx *Context) Decimal64Fast { return unary64(d, ctx, mathfn.RiemannZeta64) }

func (d Decimal64Fast) Atan2(x Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := mathfn.Atan2_64(d.t, x.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

func (d Decimal64Fast) Pow(y Decimal64Fast, ctx *Context) Decimal64Fast {
	r, sig := mathfn.Pow64(d.t, y.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}

type unaryFn64 func(components.Triple64, components.Rounding, int) (components.Triple64, components.Signal)

func unary64(d Decimal64Fast, ctx *Context, fn unaryFn64) Decimal64Fast {
	r, sig := fn(d.t, ctx.rounding(), ctx.precision(components.P64))
	ctx.Raise(sig)
	return Decimal64Fast{r}
}
