package mathfn

import (
	"math/big"

	"github.com/trippwill/decimal/internal/components"
)

func finite64(t components.Triple64, mode components.Rounding, precision int, fn func(*big.Float, uint) *big.Float) (components.Triple64, components.Signal) {
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	return fromBigFloat64(fn(x, prec), mode, precision)
}

// Exp64 returns e^x, reduced and summed at workingPrec(precision) bits via
// expCore.
func Exp64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		if t.Sign {
			return components.Zero64(false), 0
		}
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Triple64{Kind: components.KindFinite, Significand: 1}, 0
	}
	return finite64(t, mode, precision, expCore)
}

// Expm1_64 returns e^x - 1.
func Expm1_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		if t.Sign {
			return components.Triple64{Kind: components.KindFinite, Significand: 1, Sign: true}, 0
		}
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	return finite64(t, mode, precision, expm1Core)
}

// Log64 returns the natural log of x; x < 0 signals InvalidOperation, x == 0
// signals DivisionByZero.
func Log64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN64(false), components.SignalInvalidOperation
		}
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Infinity64(true), components.SignalDivisionByZero
	}
	if t.Sign {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	return finite64(t, mode, precision, logCore)
}

// Log1p64 returns log(1+x).
func Log1p64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN64(false), components.SignalInvalidOperation
		}
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	one := newFloat(prec).SetInt64(1)
	xp1 := newFloat(prec).Add(x, one)
	if xp1.Sign() < 0 {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	if xp1.Sign() == 0 {
		return components.Infinity64(true), components.SignalDivisionByZero
	}
	return fromBigFloat64(logCore(xp1, prec), mode, precision)
}

// Log10_64 returns log base 10 of x.
func Log10_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return logBase64(t, mode, precision, ln10At)
}

// Log2_64 returns log base 2 of x.
func Log2_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return logBase64(t, mode, precision, ln2At)
}

func logBase64(t components.Triple64, mode components.Rounding, precision int, base func(uint) *big.Float) (components.Triple64, components.Signal) {
	r, sig := Log64(t, mode, precision)
	if r.Kind != components.KindFinite || sig.Has(components.SignalInvalidOperation) {
		return r, sig
	}
	prec := workingPrec(precision)
	num := toBigFloat64(r, prec)
	return fromBigFloat64(newFloat(prec).Quo(num, base(prec)), mode, precision)
}

// Sin64 returns sin(x); Inf is a domain error.
func Sin64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	s, _, ok := sinCos64(t, precision)
	if !ok {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Zero64(t.Sign), 0
	}
	return fromBigFloat64(s, mode, precision)
}

// Cos64 returns cos(x); Inf is a domain error.
func Cos64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	_, c, ok := sinCos64(t, precision)
	if !ok {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Triple64{Kind: components.KindFinite, Significand: 1}, 0
	}
	return fromBigFloat64(c, mode, precision)
}

// Tan64 returns sin(x)/cos(x); Inf is a domain error.
func Tan64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	s, c, ok := sinCos64(t, precision)
	if !ok {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Zero64(t.Sign), 0
	}
	if c.Sign() == 0 {
		return components.Infinity64(s.Sign() < 0), components.SignalDivisionByZero
	}
	prec := workingPrec(precision)
	return fromBigFloat64(newFloat(prec).Quo(s, c), mode, precision)
}

func sinCos64(t components.Triple64, precision int) (sinX, cosX *big.Float, ok bool) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN, outcomeInf:
		return nil, nil, false
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	s, c := sinCosCore(x, prec)
	return s, c, true
}

// Sinh64 returns sinh(x) = (e^x - e^-x)/2.
func Sinh64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Infinity64(t.Sign), 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	r := newFloat(prec).Sub(ex, enx)
	r.Quo(r, newFloat(prec).SetInt64(2))
	return fromBigFloat64(r, mode, precision)
}

// Cosh64 returns cosh(x) = (e^x + e^-x)/2.
func Cosh64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Triple64{Kind: components.KindFinite, Significand: 1}, 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	r := newFloat(prec).Add(ex, enx)
	r.Quo(r, newFloat(prec).SetInt64(2))
	return fromBigFloat64(r, mode, precision)
}

// Tanh64 returns sinh(x)/cosh(x).
func Tanh64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Triple64{Kind: components.KindFinite, Significand: 1, Sign: t.Sign}, 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	num := newFloat(prec).Sub(ex, enx)
	den := newFloat(prec).Add(ex, enx)
	return fromBigFloat64(newFloat(prec).Quo(num, den), mode, precision)
}

// Asin64 returns arcsin(x) for x in [-1,1]; outside signals InvalidOperation.
func Asin64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.QuietNaN64(false), components.SignalInvalidOperation
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	one := newFloat(prec).SetInt64(1)
	if newFloat(prec).Abs(x).Cmp(one) > 0 {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	if newFloat(prec).Abs(x).Cmp(one) == 0 {
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		if x.Sign() < 0 {
			half.Neg(half)
		}
		return fromBigFloat64(half, mode, precision)
	}
	x2 := newFloat(prec).Mul(x, x)
	denom := newFloat(prec).Sqrt(newFloat(prec).Sub(one, x2))
	r := atanFull(newFloat(prec).Quo(x, denom), prec)
	return fromBigFloat64(r, mode, precision)
}

// Acos64 returns arccos(x) = pi/2 - asin(x).
func Acos64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	r, sig := Asin64(t, mode, precision)
	if r.Kind != components.KindFinite {
		return r, sig
	}
	prec := workingPrec(precision)
	asin := toBigFloat64(r, prec)
	half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
	return fromBigFloat64(newFloat(prec).Sub(half, asin), mode, precision)
}

// Atan64 returns arctan(x).
func Atan64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		prec := workingPrec(precision)
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		if t.Sign {
			half.Neg(half)
		}
		return fromBigFloat64(half, mode, precision)
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	return finite64(t, mode, precision, atanFull)
}

// Atan2_64 returns the angle of (x, y) in (-pi, pi].
func Atan2_64(y, x components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	prec := workingPrec(precision)
	xf := toBigFloat64(x, prec)
	yf := toBigFloat64(y, prec)
	pi := piAt(prec)
	switch {
	case xf.Sign() > 0:
		return fromBigFloat64(atanFull(newFloat(prec).Quo(yf, xf), prec), mode, precision)
	case xf.Sign() < 0 && yf.Sign() >= 0:
		r := newFloat(prec).Add(atanFull(newFloat(prec).Quo(yf, xf), prec), pi)
		return fromBigFloat64(r, mode, precision)
	case xf.Sign() < 0 && yf.Sign() < 0:
		r := newFloat(prec).Sub(atanFull(newFloat(prec).Quo(yf, xf), prec), pi)
		return fromBigFloat64(r, mode, precision)
	case xf.Sign() == 0 && yf.Sign() > 0:
		return fromBigFloat64(newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2)), mode, precision)
	case xf.Sign() == 0 && yf.Sign() < 0:
		r := newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2))
		r.Neg(r)
		return fromBigFloat64(r, mode, precision)
	default:
		return components.Zero64(false), 0
	}
}

// Pow64 returns x^y via exp(y*log(|x|)); see Pow32 for the special cases.
func Pow64(x, y components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if y.IsZero() {
		return components.Triple64{Kind: components.KindFinite, Significand: 1}, 0
	}
	if x.Kind.IsNaN() || y.Kind.IsNaN() {
		return components.QuietNaN64(false), 0
	}
	if x.IsZero() {
		if y.Sign {
			return components.Infinity64(false), components.SignalDivisionByZero
		}
		return components.Zero64(false), 0
	}
	negate := false
	if x.Sign {
		m, e := y.Significand, y.Exponent
		for e < 0 && m != 0 && m%10 == 0 {
			m, e = m/10, e+1
		}
		if y.Kind != components.KindFinite || e < 0 {
			return components.QuietNaN64(false), components.SignalInvalidOperation
		}
		negate, x.Sign = e == 0 && m%2 == 1, false
	}
	prec := workingPrec(precision)
	xf := toBigFloat64(x, prec)
	yf := toBigFloat64(y, prec)
	lnX := logCore(xf, prec)
	r := expCore(newFloat(prec).Mul(yf, lnX), prec)
	if negate {
		r.Neg(r)
	}
	return fromBigFloat64(r, mode, precision)
}

// Sqrt64 returns sqrt(x); x < 0 signals InvalidOperation.
func Sqrt64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN64(false), components.SignalInvalidOperation
		}
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	if t.Sign {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	return finite64(t, mode, precision, sqrtCore)
}

// Cbrt64 returns the real cube root of x for every real x.
func Cbrt64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Infinity64(t.Sign), 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	ax := newFloat(prec).Abs(x)
	r := cbrtCore(ax, prec)
	if t.Sign {
		r.Neg(r)
	}
	return fromBigFloat64(r, mode, precision)
}

// Gamma64 returns Gamma(x); x == 0 or a negative integer is a pole.
func Gamma64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN64(false), components.SignalInvalidOperation
		}
		return components.Infinity64(false), 0
	case outcomeZero:
		return components.Infinity64(false), components.SignalDivisionByZero
	}
	if t.Sign && isNonNegativeIntegerMagnitude64(t) {
		return components.Infinity64(false), components.SignalDivisionByZero
	}
	return finite64(t, mode, precision, gammaCore)
}

func isNonNegativeIntegerMagnitude64(t components.Triple64) bool {
	if t.Exponent >= 0 {
		return true
	}
	sig := t.Significand
	for e := t.Exponent; e < 0; e++ {
		if sig%10 != 0 {
			return false
		}
		sig /= 10
	}
	return true
}

// Lgamma64 returns ln(|Gamma(x)|).
func Lgamma64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	g, sig := Gamma64(t, mode, precision)
	if g.Kind != components.KindFinite {
		if g.Kind == components.KindInfinity {
			return components.Infinity64(false), sig
		}
		return components.QuietNaN64(false), sig
	}
	return finite64(t, mode, precision, lgammaCore)
}

// Erf64 returns erf(x).
func Erf64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Triple64{Kind: components.KindFinite, Significand: 1, Sign: t.Sign}, 0
	case outcomeZero:
		return components.Zero64(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	r := erfCore(newFloat(prec).Abs(x), prec)
	if t.Sign {
		r.Neg(r)
	}
	return fromBigFloat64(r, mode, precision)
}

// Erfc64 returns 1 - erf(x).
func Erfc64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	r, sig := Erf64(t, mode, precision)
	if r.Kind != components.KindFinite {
		if r.Kind == components.KindInfinity {
			return components.Zero64(r.Sign), sig
		}
		return r, sig
	}
	prec := workingPrec(precision)
	erfVal := toBigFloat64(r, prec)
	return fromBigFloat64(newFloat(prec).Sub(newFloat(prec).SetInt64(1), erfVal), mode, precision)
}

// BesselJ0_64 returns J0(x).
func BesselJ0_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return besselJ64(0, t, mode, precision)
}

// BesselJ1_64 returns J1(x).
func BesselJ1_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return besselJ64(1, t, mode, precision)
}

func besselJ64(n int, t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Zero64(false), 0
	case outcomeZero:
		if n == 0 {
			return components.Triple64{Kind: components.KindFinite, Significand: 1}, 0
		}
		return components.Zero64(false), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	return fromBigFloat64(besselJCore(n, x, prec), mode, precision)
}

// BesselY0_64 returns Y0(x); x < 0 is a domain error (InvalidOperation),
// and x == 0 gives -Infinity with DivisionByZero.
func BesselY0_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return besselY64(0, t, mode, precision)
}

// BesselY1_64 returns Y1(x); x < 0 is a domain error (InvalidOperation),
// and x == 0 gives -Infinity with DivisionByZero.
func BesselY1_64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return besselY64(1, t, mode, precision)
}

func besselY64(n int, t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN64(false), 0
	case outcomeInf:
		return components.Zero64(false), 0
	case outcomeZero:
		return components.Infinity64(true), components.SignalDivisionByZero
	}
	if t.Sign {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	prec := workingPrec(precision)
	x := toBigFloat64(t, prec)
	return fromBigFloat64(besselYCore(n, x, prec), mode, precision)
}

// EllipticK64 returns the complete elliptic integral of the first kind K(m)
// for m in [0,1); m == 1 diverges, m outside [0,1] is a domain error.
func EllipticK64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	prec := workingPrec(precision)
	m, ok := ellipticDomain64(t, prec)
	if !ok {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	one := newFloat(prec).SetInt64(1)
	if m.Cmp(one) == 0 {
		return components.Infinity64(false), components.SignalDivisionByZero
	}
	return fromBigFloat64(ellipticKCore(m, prec), mode, precision)
}

// EllipticE64 returns the complete elliptic integral of the second kind
// E(m) for m in [0,1].
func EllipticE64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	prec := workingPrec(precision)
	m, ok := ellipticDomain64(t, prec)
	if !ok {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	return fromBigFloat64(ellipticECore(m, prec), mode, precision)
}

func ellipticDomain64(t components.Triple64, prec uint) (*big.Float, bool) {
	if t.Kind.IsNaN() {
		return nil, false
	}
	if t.Kind == components.KindInfinity {
		return nil, false
	}
	m := toBigFloat64(t, prec)
	one := newFloat(prec).SetInt64(1)
	if m.Sign() < 0 || m.Cmp(one) > 0 {
		return nil, false
	}
	return m, true
}

// RiemannZeta64 returns zeta(s) for real s > 1.
func RiemannZeta64(t components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if t.Kind.IsNaN() {
		return components.QuietNaN64(false), 0
	}
	if t.Kind == components.KindInfinity {
		if t.Sign {
			return components.QuietNaN64(false), components.SignalInvalidOperation
		}
		return components.Triple64{Kind: components.KindFinite, Significand: 1}, 0
	}
	prec := workingPrec(precision)
	s := toBigFloat64(t, prec)
	one := newFloat(prec).SetInt64(1)
	if s.Cmp(one) <= 0 {
		return components.QuietNaN64(false), components.SignalInvalidOperation
	}
	return fromBigFloat64(zetaCore(s, prec), mode, precision)
}
