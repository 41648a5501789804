package mathfn

import (
	"math/big"

	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

func finite128(t components.Triple128, mode components.Rounding, precision int, fn func(*big.Float, uint) *big.Float) (components.Triple128, components.Signal) {
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	return fromBigFloat128(fn(x, prec), mode, precision)
}

// Exp128 returns e^x, reduced and summed at workingPrec(precision) bits via
// expCore.
func Exp128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		if t.Sign {
			return components.Zero128(false), 0
		}
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1)}, 0
	}
	return finite128(t, mode, precision, expCore)
}

// Expm1_128 returns e^x - 1.
func Expm1_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		if t.Sign {
			return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1), Sign: true}, 0
		}
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	return finite128(t, mode, precision, expm1Core)
}

// Log128 returns the natural log of x; x < 0 signals InvalidOperation, x == 0
// signals DivisionByZero.
func Log128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN128(false), components.SignalInvalidOperation
		}
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Infinity128(true), components.SignalDivisionByZero
	}
	if t.Sign {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	return finite128(t, mode, precision, logCore)
}

// Log1p128 returns log(1+x).
func Log1p128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN128(false), components.SignalInvalidOperation
		}
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	one := newFloat(prec).SetInt64(1)
	xp1 := newFloat(prec).Add(x, one)
	if xp1.Sign() < 0 {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	if xp1.Sign() == 0 {
		return components.Infinity128(true), components.SignalDivisionByZero
	}
	return fromBigFloat128(logCore(xp1, prec), mode, precision)
}

// Log10_128 returns log base 10 of x.
func Log10_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return logBase128(t, mode, precision, ln10At)
}

// Log2_128 returns log base 2 of x.
func Log2_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return logBase128(t, mode, precision, ln2At)
}

func logBase128(t components.Triple128, mode components.Rounding, precision int, base func(uint) *big.Float) (components.Triple128, components.Signal) {
	r, sig := Log128(t, mode, precision)
	if r.Kind != components.KindFinite || sig.Has(components.SignalInvalidOperation) {
		return r, sig
	}
	prec := workingPrec(precision)
	num := toBigFloat128(r, prec)
	return fromBigFloat128(newFloat(prec).Quo(num, base(prec)), mode, precision)
}

// Sin128 returns sin(x); Inf is a domain error.
func Sin128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	s, _, ok := sinCos128(t, precision)
	if !ok {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Zero128(t.Sign), 0
	}
	return fromBigFloat128(s, mode, precision)
}

// Cos128 returns cos(x); Inf is a domain error.
func Cos128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	_, c, ok := sinCos128(t, precision)
	if !ok {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1)}, 0
	}
	return fromBigFloat128(c, mode, precision)
}

// Tan128 returns sin(x)/cos(x); Inf is a domain error.
func Tan128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	s, c, ok := sinCos128(t, precision)
	if !ok {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Zero128(t.Sign), 0
	}
	if c.Sign() == 0 {
		return components.Infinity128(s.Sign() < 0), components.SignalDivisionByZero
	}
	prec := workingPrec(precision)
	return fromBigFloat128(newFloat(prec).Quo(s, c), mode, precision)
}

func sinCos128(t components.Triple128, precision int) (sinX, cosX *big.Float, ok bool) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN, outcomeInf:
		return nil, nil, false
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	s, c := sinCosCore(x, prec)
	return s, c, true
}

// Sinh128 returns sinh(x) = (e^x - e^-x)/2.
func Sinh128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Infinity128(t.Sign), 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	r := newFloat(prec).Sub(ex, enx)
	r.Quo(r, newFloat(prec).SetInt64(2))
	return fromBigFloat128(r, mode, precision)
}

// Cosh128 returns cosh(x) = (e^x + e^-x)/2.
func Cosh128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1)}, 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	r := newFloat(prec).Add(ex, enx)
	r.Quo(r, newFloat(prec).SetInt64(2))
	return fromBigFloat128(r, mode, precision)
}

// Tanh128 returns sinh(x)/cosh(x).
func Tanh128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1), Sign: t.Sign}, 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	num := newFloat(prec).Sub(ex, enx)
	den := newFloat(prec).Add(ex, enx)
	return fromBigFloat128(newFloat(prec).Quo(num, den), mode, precision)
}

// Asin128 returns arcsin(x) for x in [-1,1]; outside signals InvalidOperation.
func Asin128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.QuietNaN128(false), components.SignalInvalidOperation
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	one := newFloat(prec).SetInt64(1)
	if newFloat(prec).Abs(x).Cmp(one) > 0 {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	if newFloat(prec).Abs(x).Cmp(one) == 0 {
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		if x.Sign() < 0 {
			half.Neg(half)
		}
		return fromBigFloat128(half, mode, precision)
	}
	x2 := newFloat(prec).Mul(x, x)
	denom := newFloat(prec).Sqrt(newFloat(prec).Sub(one, x2))
	r := atanFull(newFloat(prec).Quo(x, denom), prec)
	return fromBigFloat128(r, mode, precision)
}

// Acos128 returns arccos(x) = pi/2 - asin(x).
func Acos128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	r, sig := Asin128(t, mode, precision)
	if r.Kind != components.KindFinite {
		return r, sig
	}
	prec := workingPrec(precision)
	asin := toBigFloat128(r, prec)
	half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
	return fromBigFloat128(newFloat(prec).Sub(half, asin), mode, precision)
}

// Atan128 returns arctan(x).
func Atan128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		prec := workingPrec(precision)
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		if t.Sign {
			half.Neg(half)
		}
		return fromBigFloat128(half, mode, precision)
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	return finite128(t, mode, precision, atanFull)
}

// Atan2_128 returns the angle of (x, y) in (-pi, pi].
func Atan2_128(y, x components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	prec := workingPrec(precision)
	xf := toBigFloat128(x, prec)
	yf := toBigFloat128(y, prec)
	pi := piAt(prec)
	switch {
	case xf.Sign() > 0:
		return fromBigFloat128(atanFull(newFloat(prec).Quo(yf, xf), prec), mode, precision)
	case xf.Sign() < 0 && yf.Sign() >= 0:
		r := newFloat(prec).Add(atanFull(newFloat(prec).Quo(yf, xf), prec), pi)
		return fromBigFloat128(r, mode, precision)
	case xf.Sign() < 0 && yf.Sign() < 0:
		r := newFloat(prec).Sub(atanFull(newFloat(prec).Quo(yf, xf), prec), pi)
		return fromBigFloat128(r, mode, precision)
	case xf.Sign() == 0 && yf.Sign() > 0:
		return fromBigFloat128(newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2)), mode, precision)
	case xf.Sign() == 0 && yf.Sign() < 0:
		r := newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2))
		r.Neg(r)
		return fromBigFloat128(r, mode, precision)
	default:
		return components.Zero128(false), 0
	}
}

// Pow128 returns x^y via exp(y*log(|x|)); see Pow32 for the special cases.
func Pow128(x, y components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	if y.IsZero() {
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1)}, 0
	}
	if x.Kind.IsNaN() || y.Kind.IsNaN() {
		return components.QuietNaN128(false), 0
	}
	if x.IsZero() {
		if y.Sign {
			return components.Infinity128(false), components.SignalDivisionByZero
		}
		return components.Zero128(false), 0
	}
	negate := false
	if x.Sign {
		m, e, ten := y.Significand, y.Exponent, bigint.U128FromUint64(10)
		for q, rem := m.QuoRem(ten); e < 0 && !m.IsZero() && rem.IsZero(); q, rem = m.QuoRem(ten) {
			m, e = q, e+1
		}
		if y.Kind != components.KindFinite || e < 0 {
			return components.QuietNaN128(false), components.SignalInvalidOperation
		}
		negate, x.Sign = e == 0 && m.Lo%2 == 1, false
	}
	prec := workingPrec(precision)
	xf := toBigFloat128(x, prec)
	yf := toBigFloat128(y, prec)
	lnX := logCore(xf, prec)
	r := expCore(newFloat(prec).Mul(yf, lnX), prec)
	if negate {
		r.Neg(r)
	}
	return fromBigFloat128(r, mode, precision)
}

// Sqrt128 returns sqrt(x); x < 0 signals InvalidOperation.
func Sqrt128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN128(false), components.SignalInvalidOperation
		}
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	if t.Sign {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	return finite128(t, mode, precision, sqrtCore)
}

// Cbrt128 returns the real cube root of x for every real x.
func Cbrt128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Infinity128(t.Sign), 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	ax := newFloat(prec).Abs(x)
	r := cbrtCore(ax, prec)
	if t.Sign {
		r.Neg(r)
	}
	return fromBigFloat128(r, mode, precision)
}

// Gamma128 returns Gamma(x); x == 0 or a negative integer is a pole.
func Gamma128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN128(false), components.SignalInvalidOperation
		}
		return components.Infinity128(false), 0
	case outcomeZero:
		return components.Infinity128(false), components.SignalDivisionByZero
	}
	if t.Sign && isNonNegativeIntegerMagnitude128(t) {
		return components.Infinity128(false), components.SignalDivisionByZero
	}
	return finite128(t, mode, precision, gammaCore)
}

func isNonNegativeIntegerMagnitude128(t components.Triple128) bool {
	if t.Exponent >= 0 {
		return true
	}
	sig := t.Significand
	ten := bigint.U128FromUint64(10)
	for e := t.Exponent; e < 0; e++ {
		q, r := sig.QuoRem(ten)
		if !r.IsZero() {
			return false
		}
		sig = q
	}
	return true
}

// Lgamma128 returns ln(|Gamma(x)|).
func Lgamma128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	g, sig := Gamma128(t, mode, precision)
	if g.Kind != components.KindFinite {
		if g.Kind == components.KindInfinity {
			return components.Infinity128(false), sig
		}
		return components.QuietNaN128(false), sig
	}
	return finite128(t, mode, precision, lgammaCore)
}

// Erf128 returns erf(x).
func Erf128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1), Sign: t.Sign}, 0
	case outcomeZero:
		return components.Zero128(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	r := erfCore(newFloat(prec).Abs(x), prec)
	if t.Sign {
		r.Neg(r)
	}
	return fromBigFloat128(r, mode, precision)
}

// Erfc128 returns 1 - erf(x).
func Erfc128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	r, sig := Erf128(t, mode, precision)
	if r.Kind != components.KindFinite {
		if r.Kind == components.KindInfinity {
			return components.Zero128(r.Sign), sig
		}
		return r, sig
	}
	prec := workingPrec(precision)
	erfVal := toBigFloat128(r, prec)
	return fromBigFloat128(newFloat(prec).Sub(newFloat(prec).SetInt64(1), erfVal), mode, precision)
}

// BesselJ0_128 returns J0(x).
func BesselJ0_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return besselJ128(0, t, mode, precision)
}

// BesselJ1_128 returns J1(x).
func BesselJ1_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return besselJ128(1, t, mode, precision)
}

func besselJ128(n int, t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Zero128(false), 0
	case outcomeZero:
		if n == 0 {
			return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1)}, 0
		}
		return components.Zero128(false), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	return fromBigFloat128(besselJCore(n, x, prec), mode, precision)
}

// BesselY0_128 returns Y0(x); x < 0 is a domain error (InvalidOperation),
// and x == 0 gives -Infinity with DivisionByZero.
func BesselY0_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return besselY128(0, t, mode, precision)
}

// BesselY1_128 returns Y1(x); x < 0 is a domain error (InvalidOperation),
// and x == 0 gives -Infinity with DivisionByZero.
func BesselY1_128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return besselY128(1, t, mode, precision)
}

func besselY128(n int, t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN128(false), 0
	case outcomeInf:
		return components.Zero128(false), 0
	case outcomeZero:
		return components.Infinity128(true), components.SignalDivisionByZero
	}
	if t.Sign {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	prec := workingPrec(precision)
	x := toBigFloat128(t, prec)
	return fromBigFloat128(besselYCore(n, x, prec), mode, precision)
}

// EllipticK128 returns the complete elliptic integral of the first kind K(m)
// for m in [0,1); m == 1 diverges, m outside [0,1] is a domain error.
func EllipticK128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	prec := workingPrec(precision)
	m, ok := ellipticDomain128(t, prec)
	if !ok {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	one := newFloat(prec).SetInt64(1)
	if m.Cmp(one) == 0 {
		return components.Infinity128(false), components.SignalDivisionByZero
	}
	return fromBigFloat128(ellipticKCore(m, prec), mode, precision)
}

// EllipticE128 returns the complete elliptic integral of the second kind
// E(m) for m in [0,1].
func EllipticE128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	prec := workingPrec(precision)
	m, ok := ellipticDomain128(t, prec)
	if !ok {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	return fromBigFloat128(ellipticECore(m, prec), mode, precision)
}

func ellipticDomain128(t components.Triple128, prec uint) (*big.Float, bool) {
	if t.Kind.IsNaN() {
		return nil, false
	}
	if t.Kind == components.KindInfinity {
		return nil, false
	}
	m := toBigFloat128(t, prec)
	one := newFloat(prec).SetInt64(1)
	if m.Sign() < 0 || m.Cmp(one) > 0 {
		return nil, false
	}
	return m, true
}

// RiemannZeta128 returns zeta(s) for real s > 1.
func RiemannZeta128(t components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	if t.Kind.IsNaN() {
		return components.QuietNaN128(false), 0
	}
	if t.Kind == components.KindInfinity {
		if t.Sign {
			return components.QuietNaN128(false), components.SignalInvalidOperation
		}
		return components.Triple128{Kind: components.KindFinite, Significand: bigint.U128FromUint64(1)}, 0
	}
	prec := workingPrec(precision)
	s := toBigFloat128(t, prec)
	one := newFloat(prec).SetInt64(1)
	if s.Cmp(one) <= 0 {
		return components.QuietNaN128(false), components.SignalInvalidOperation
	}
	return fromBigFloat128(zetaCore(s, prec), mode, precision)
}
