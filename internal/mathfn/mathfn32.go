package mathfn

import (
	"math/big"

	"github.com/trippwill/decimal/internal/components"
)

func finite32(t components.Triple32, mode components.Rounding, precision int, fn func(*big.Float, uint) *big.Float) (components.Triple32, components.Signal) {
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	return fromBigFloat32(fn(x, prec), mode, precision)
}

// Exp32 returns e^x, reduced and summed at workingPrec(precision) bits via
// expCore.
func Exp32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		if t.Sign {
			return components.Zero32(false), 0
		}
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Triple32{Kind: components.KindFinite, Significand: 1}, 0
	}
	return finite32(t, mode, precision, expCore)
}

// Expm1_32 returns e^x - 1.
func Expm1_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		if t.Sign {
			return components.Triple32{Kind: components.KindFinite, Significand: 1, Sign: true}, 0
		}
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	return finite32(t, mode, precision, expm1Core)
}

// Log32 returns the natural log of x; x < 0 signals InvalidOperation, x == 0
// signals DivisionByZero.
func Log32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN32(false), components.SignalInvalidOperation
		}
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Infinity32(true), components.SignalDivisionByZero
	}
	if t.Sign {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	return finite32(t, mode, precision, logCore)
}

// Log1p32 returns log(1+x).
func Log1p32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN32(false), components.SignalInvalidOperation
		}
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	one := newFloat(prec).SetInt64(1)
	xp1 := newFloat(prec).Add(x, one)
	if xp1.Sign() < 0 {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	if xp1.Sign() == 0 {
		return components.Infinity32(true), components.SignalDivisionByZero
	}
	return fromBigFloat32(logCore(xp1, prec), mode, precision)
}

// Log10_32 returns log base 10 of x.
func Log10_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return logBase32(t, mode, precision, ln10At)
}

// Log2_32 returns log base 2 of x.
func Log2_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return logBase32(t, mode, precision, ln2At)
}

func logBase32(t components.Triple32, mode components.Rounding, precision int, base func(uint) *big.Float) (components.Triple32, components.Signal) {
	r, sig := Log32(t, mode, precision)
	if r.Kind != components.KindFinite || sig.Has(components.SignalInvalidOperation) {
		return r, sig
	}
	prec := workingPrec(precision)
	num := toBigFloat32(r, prec)
	return fromBigFloat32(newFloat(prec).Quo(num, base(prec)), mode, precision)
}

// Sin32 returns sin(x); Inf is a domain error.
func Sin32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	s, _, ok := sinCos32(t, precision)
	if !ok {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Zero32(t.Sign), 0
	}
	return fromBigFloat32(s, mode, precision)
}

// Cos32 returns cos(x); Inf is a domain error.
func Cos32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	_, c, ok := sinCos32(t, precision)
	if !ok {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Triple32{Kind: components.KindFinite, Significand: 1}, 0
	}
	return fromBigFloat32(c, mode, precision)
}

// Tan32 returns sin(x)/cos(x); Inf is a domain error.
func Tan32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	s, c, ok := sinCos32(t, precision)
	if !ok {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	if t.IsZero() {
		return components.Zero32(t.Sign), 0
	}
	if c.Sign() == 0 {
		return components.Infinity32(s.Sign() < 0), components.SignalDivisionByZero
	}
	prec := workingPrec(precision)
	return fromBigFloat32(newFloat(prec).Quo(s, c), mode, precision)
}

func sinCos32(t components.Triple32, precision int) (sinX, cosX *big.Float, ok bool) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN, outcomeInf:
		return nil, nil, false
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	s, c := sinCosCore(x, prec)
	return s, c, true
}

// Sinh32 returns sinh(x) = (e^x - e^-x)/2.
func Sinh32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Infinity32(t.Sign), 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	r := newFloat(prec).Sub(ex, enx)
	r.Quo(r, newFloat(prec).SetInt64(2))
	return fromBigFloat32(r, mode, precision)
}

// Cosh32 returns cosh(x) = (e^x + e^-x)/2.
func Cosh32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Triple32{Kind: components.KindFinite, Significand: 1}, 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	r := newFloat(prec).Add(ex, enx)
	r.Quo(r, newFloat(prec).SetInt64(2))
	return fromBigFloat32(r, mode, precision)
}

// Tanh32 returns sinh(x)/cosh(x).
func Tanh32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Triple32{Kind: components.KindFinite, Significand: 1, Sign: t.Sign}, 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	ex := expCore(x, prec)
	enx := expCore(newFloat(prec).Neg(x), prec)
	num := newFloat(prec).Sub(ex, enx)
	den := newFloat(prec).Add(ex, enx)
	return fromBigFloat32(newFloat(prec).Quo(num, den), mode, precision)
}

// Asin32 returns arcsin(x) for x in [-1,1]; outside signals InvalidOperation.
func Asin32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.QuietNaN32(false), components.SignalInvalidOperation
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	one := newFloat(prec).SetInt64(1)
	if newFloat(prec).Abs(x).Cmp(one) > 0 {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	if newFloat(prec).Abs(x).Cmp(one) == 0 {
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		if x.Sign() < 0 {
			half.Neg(half)
		}
		return fromBigFloat32(half, mode, precision)
	}
	x2 := newFloat(prec).Mul(x, x)
	denom := newFloat(prec).Sqrt(newFloat(prec).Sub(one, x2))
	r := atanFull(newFloat(prec).Quo(x, denom), prec)
	return fromBigFloat32(r, mode, precision)
}

// Acos32 returns arccos(x) = pi/2 - asin(x).
func Acos32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	r, sig := Asin32(t, mode, precision)
	if r.Kind != components.KindFinite {
		return r, sig
	}
	prec := workingPrec(precision)
	asin := toBigFloat32(r, prec)
	half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
	return fromBigFloat32(newFloat(prec).Sub(half, asin), mode, precision)
}

// Atan32 returns arctan(x).
func Atan32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		prec := workingPrec(precision)
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		if t.Sign {
			half.Neg(half)
		}
		return fromBigFloat32(half, mode, precision)
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	return finite32(t, mode, precision, atanFull)
}

// Atan2_32 returns the angle of (x, y) in (-pi, pi].
func Atan2_32(y, x components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	prec := workingPrec(precision)
	xf := toBigFloat32(x, prec)
	yf := toBigFloat32(y, prec)
	pi := piAt(prec)
	switch {
	case xf.Sign() > 0:
		return fromBigFloat32(atanFull(newFloat(prec).Quo(yf, xf), prec), mode, precision)
	case xf.Sign() < 0 && yf.Sign() >= 0:
		r := newFloat(prec).Add(atanFull(newFloat(prec).Quo(yf, xf), prec), pi)
		return fromBigFloat32(r, mode, precision)
	case xf.Sign() < 0 && yf.Sign() < 0:
		r := newFloat(prec).Sub(atanFull(newFloat(prec).Quo(yf, xf), prec), pi)
		return fromBigFloat32(r, mode, precision)
	case xf.Sign() == 0 && yf.Sign() > 0:
		return fromBigFloat32(newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2)), mode, precision)
	case xf.Sign() == 0 && yf.Sign() < 0:
		r := newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2))
		r.Neg(r)
		return fromBigFloat32(r, mode, precision)
	default:
		return components.Zero32(false), 0
	}
}

// Pow32 returns x^y via exp(y*log(|x|)). y == 0 gives 1, even for a NaN x.
// x == 0 gives +0, or +Infinity with DivisionByZero for negative y. A
// negative x gives a result only for a finite integer y, negated when y is
// odd; any other y gives NaN with InvalidOperation.
func Pow32(x, y components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if y.IsZero() {
		return components.Triple32{Kind: components.KindFinite, Significand: 1}, 0
	}
	if x.Kind.IsNaN() || y.Kind.IsNaN() {
		return components.QuietNaN32(false), 0
	}
	if x.IsZero() {
		if y.Sign {
			return components.Infinity32(false), components.SignalDivisionByZero
		}
		return components.Zero32(false), 0
	}
	negate := false
	if x.Sign {
		m, e := uint64(y.Significand), y.Exponent
		for e < 0 && m != 0 && m%10 == 0 {
			m, e = m/10, e+1
		}
		if y.Kind != components.KindFinite || e < 0 {
			return components.QuietNaN32(false), components.SignalInvalidOperation
		}
		negate, x.Sign = e == 0 && m%2 == 1, false
	}
	prec := workingPrec(precision)
	xf := toBigFloat32(x, prec)
	yf := toBigFloat32(y, prec)
	lnX := logCore(xf, prec)
	r := expCore(newFloat(prec).Mul(yf, lnX), prec)
	if negate {
		r.Neg(r)
	}
	return fromBigFloat32(r, mode, precision)
}

// Sqrt32 returns sqrt(x); x < 0 signals InvalidOperation.
func Sqrt32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN32(false), components.SignalInvalidOperation
		}
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	if t.Sign {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	return finite32(t, mode, precision, sqrtCore)
}

// Cbrt32 returns the real cube root of x for every real x.
func Cbrt32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Infinity32(t.Sign), 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	ax := newFloat(prec).Abs(x)
	r := cbrtCore(ax, prec)
	if t.Sign {
		r.Neg(r)
	}
	return fromBigFloat32(r, mode, precision)
}

// Gamma32 returns Gamma(x); x == 0 or a negative integer is a pole.
func Gamma32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		if t.Sign {
			return components.QuietNaN32(false), components.SignalInvalidOperation
		}
		return components.Infinity32(false), 0
	case outcomeZero:
		return components.Infinity32(false), components.SignalDivisionByZero
	}
	if t.Sign && isNonNegativeIntegerMagnitude32(t) {
		return components.Infinity32(false), components.SignalDivisionByZero
	}
	return finite32(t, mode, precision, gammaCore)
}

func isNonNegativeIntegerMagnitude32(t components.Triple32) bool {
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

// Lgamma32 returns ln(|Gamma(x)|).
func Lgamma32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	g, sig := Gamma32(t, mode, precision)
	if g.Kind != components.KindFinite {
		if g.Kind == components.KindInfinity {
			return components.Infinity32(false), sig
		}
		return components.QuietNaN32(false), sig
	}
	return finite32(t, mode, precision, lgammaCore)
}

// Erf32 returns erf(x).
func Erf32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Triple32{Kind: components.KindFinite, Significand: 1, Sign: t.Sign}, 0
	case outcomeZero:
		return components.Zero32(t.Sign), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	r := erfCore(newFloat(prec).Abs(x), prec)
	if t.Sign {
		r.Neg(r)
	}
	return fromBigFloat32(r, mode, precision)
}

// Erfc32 returns 1 - erf(x).
func Erfc32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	r, sig := Erf32(t, mode, precision)
	if r.Kind != components.KindFinite {
		if r.Kind == components.KindInfinity {
			return components.Zero32(r.Sign), sig
		}
		return r, sig
	}
	prec := workingPrec(precision)
	erfVal := toBigFloat32(r, prec)
	return fromBigFloat32(newFloat(prec).Sub(newFloat(prec).SetInt64(1), erfVal), mode, precision)
}

// BesselJ0_32 returns J0(x).
func BesselJ0_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return besselJ32(0, t, mode, precision)
}

// BesselJ1_32 returns J1(x).
func BesselJ1_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return besselJ32(1, t, mode, precision)
}

func besselJ32(n int, t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Zero32(false), 0
	case outcomeZero:
		if n == 0 {
			return components.Triple32{Kind: components.KindFinite, Significand: 1}, 0
		}
		return components.Zero32(false), 0
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	return fromBigFloat32(besselJCore(n, x, prec), mode, precision)
}

// BesselY0_32 returns Y0(x); x < 0 is a domain error (InvalidOperation),
// and x == 0 gives -Infinity with DivisionByZero.
func BesselY0_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return besselY32(0, t, mode, precision)
}

// BesselY1_32 returns Y1(x); x < 0 is a domain error (InvalidOperation),
// and x == 0 gives -Infinity with DivisionByZero.
func BesselY1_32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return besselY32(1, t, mode, precision)
}

func besselY32(n int, t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	switch classify(t.Kind, t.IsZero()) {
	case outcomeNaN:
		return components.QuietNaN32(false), 0
	case outcomeInf:
		return components.Zero32(false), 0
	case outcomeZero:
		return components.Infinity32(true), components.SignalDivisionByZero
	}
	if t.Sign {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	prec := workingPrec(precision)
	x := toBigFloat32(t, prec)
	return fromBigFloat32(besselYCore(n, x, prec), mode, precision)
}

// EllipticK32 returns the complete elliptic integral of the first kind K(m)
// for m in [0,1); m == 1 diverges, m outside [0,1] is a domain error.
func EllipticK32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	prec := workingPrec(precision)
	m, ok := ellipticDomain32(t, prec)
	if !ok {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	one := newFloat(prec).SetInt64(1)
	if m.Cmp(one) == 0 {
		return components.Infinity32(false), components.SignalDivisionByZero
	}
	return fromBigFloat32(ellipticKCore(m, prec), mode, precision)
}

// EllipticE32 returns the complete elliptic integral of the second kind
// E(m) for m in [0,1].
func EllipticE32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	prec := workingPrec(precision)
	m, ok := ellipticDomain32(t, prec)
	if !ok {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	return fromBigFloat32(ellipticECore(m, prec), mode, precision)
}

func ellipticDomain32(t components.Triple32, prec uint) (*big.Float, bool) {
	if t.Kind.IsNaN() {
		return nil, false
	}
	if t.Kind == components.KindInfinity {
		return nil, false
	}
	m := toBigFloat32(t, prec)
	one := newFloat(prec).SetInt64(1)
	if m.Sign() < 0 || m.Cmp(one) > 0 {
		return nil, false
	}
	return m, true
}

// RiemannZeta32 returns zeta(s) for real s > 1.
func RiemannZeta32(t components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if t.Kind.IsNaN() {
		return components.QuietNaN32(false), 0
	}
	if t.Kind == components.KindInfinity {
		if t.Sign {
			return components.QuietNaN32(false), components.SignalInvalidOperation
		}
		return components.Triple32{Kind: components.KindFinite, Significand: 1}, 0
	}
	prec := workingPrec(precision)
	s := toBigFloat32(t, prec)
	one := newFloat(prec).SetInt64(1)
	if s.Cmp(one) <= 0 {
		return components.QuietNaN32(false), components.SignalInvalidOperation
	}
	return fromBigFloat32(zetaCore(s, prec), mode, precision)
}
