package mathfn

import "math/big"

// expCore evaluates e^x via range reduction x = k*ln2 + r, with k = x/ln2
// truncated toward zero so |r| < ln2,
// a Taylor series for e^r, then e^x = e^r * 2^k via Float.SetMantExp,
// summing the series to convergence at the working precision rather than
// evaluating a fixed-degree polynomial.
func expCore(x *big.Float, prec uint) *big.Float {
	ln2 := ln2At(prec)
	kf := newFloat(prec).Quo(x, ln2)
	k, _ := kf.Int64()
	r := newFloat(prec).Sub(x, newFloat(prec).Mul(newFloat(prec).SetInt64(k), ln2))

	sum := newFloat(prec).SetInt64(1)
	term := newFloat(prec).SetInt64(1)
	for n := int64(1); n < 4000; n++ {
		term = newFloat(prec).Quo(newFloat(prec).Mul(term, r), newFloat(prec).SetInt64(n))
		sum.Add(sum, term)
		if termNegligible(term, sum, prec) {
			break
		}
	}
	// e^x = e^r * 2^k; SetMantExp scales by 2^k exactly via the exponent
	// field, with no iterative multiplication even for wide decimal128
	// exponent ranges.
	return newFloat(prec).SetMantExp(sum, int(k))
}

// expm1Core returns e^x - 1. It does not special-case small x to avoid the
// cancellation expCore's own path would hit there; the working precision's
// guard band is assumed to cover it.
func expm1Core(x *big.Float, prec uint) *big.Float {
	return newFloat(prec).Sub(expCore(x, prec), newFloat(prec).SetInt64(1))
}

func termNegligible(term, sum *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}
	scale := newFloat(prec).SetMantExp(newFloat(prec).SetInt64(1), -int(prec))
	bound := newFloat(prec).Mul(absFloat(sum, prec), scale)
	return absFloat(term, prec).Cmp(bound) < 0
}

func absFloat(x *big.Float, prec uint) *big.Float {
	return newFloat(prec).Abs(x)
}

// logCore evaluates ln(x) for x > 0 by writing x = m*2^k with m in
// [sqrt(1/2), sqrt(2)] (via Float.MantExp, a binary frexp), then
// z = (m-1)/(m+1), ln(m) = 2*atanh(z) = 2*(z + z^3/3 + z^5/5 + ...), and
// ln(x) = k*ln2 + ln(m), the standard atanh-family series for the
// logarithm (Series[Log[(1+z/2)/(1-z/2)]] under a variable rescaling).
func logCore(x *big.Float, prec uint) *big.Float {
	mant := new(big.Float).SetPrec(prec)
	exp2 := x.MantExp(mant) // x = mant * 2^exp2, mant in [0.5, 1)
	m := newFloat(prec).Set(mant)
	k := int64(exp2)
	// normalize mant in [0.5,1) to [sqrt(1/2), sqrt(2)) by pulling one
	// factor of 2 in or out so the odd series converges fast.
	two := newFloat(prec).SetInt64(2)
	m.Mul(m, two) // shift into [1, 2)
	k--
	if m.Cmp(sqrt2At(prec)) > 0 {
		m.Quo(m, two)
		k++
	}

	one := newFloat(prec).SetInt64(1)
	z := newFloat(prec).Quo(newFloat(prec).Sub(m, one), newFloat(prec).Add(m, one))
	z2 := newFloat(prec).Mul(z, z)

	sum := newFloat(prec).Set(z)
	term := newFloat(prec).Set(z)
	for n := int64(1); n < 4000; n++ {
		term = newFloat(prec).Mul(term, z2)
		denom := newFloat(prec).SetInt64(2*n + 1)
		add := newFloat(prec).Quo(term, denom)
		sum.Add(sum, add)
		if termNegligible(add, sum, prec) {
			break
		}
	}
	sum.Mul(sum, two)

	ln2 := ln2At(prec)
	kTerm := newFloat(prec).Mul(newFloat(prec).SetInt64(k), ln2)
	return sum.Add(sum, kTerm)
}

// atanCore evaluates atan(x) for x >= 0 by halving the argument until it
// is small (atan(x) = 2*atan(x/(1+sqrt(1+x^2)))) and then summing the
// Taylor series for the small remaining argument; sign symmetry and the
// |x|>1 reflection (atan(x)=pi/2-atan(1/x)) are handled by the caller
// (atanFull). The continuous halving reduction serves every precision
// with one code path, rather than a fixed set of reduction pivots.
func atanCore(x *big.Float, prec uint) *big.Float {
	one := newFloat(prec).SetInt64(1)
	halvings := 0
	cur := newFloat(prec).Set(x)
	threshold := newFloat(prec).SetFloat64(1e-2)
	for cur.Cmp(threshold) > 0 && halvings < 200 {
		x2 := newFloat(prec).Mul(cur, cur)
		denom := newFloat(prec).Sqrt(newFloat(prec).Add(one, x2))
		denom.Add(denom, one)
		cur = newFloat(prec).Quo(cur, denom)
		halvings++
	}

	x2 := newFloat(prec).Mul(cur, cur)
	sum := newFloat(prec).Set(cur)
	term := newFloat(prec).Set(cur)
	sign := -1.0
	for n := int64(1); n < 4000; n++ {
		term = newFloat(prec).Mul(term, x2)
		denom := newFloat(prec).SetInt64(2*n + 1)
		add := newFloat(prec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, add)
		} else {
			sum.Add(sum, add)
		}
		sign = -sign
		if termNegligible(add, sum, prec) {
			break
		}
	}

	for i := 0; i < halvings; i++ {
		sum.Mul(sum, newFloat(prec).SetInt64(2))
	}
	return sum
}

// atanFull handles the full real line: sign symmetry and the |x|>1
// reciprocal reflection atan(x) = pi/2 - atan(1/x).
func atanFull(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return newFloat(prec).SetInt64(0)
	}
	neg := x.Sign() < 0
	ax := newFloat(prec).Abs(x)
	one := newFloat(prec).SetInt64(1)
	var r *big.Float
	if ax.Cmp(one) > 0 {
		inv := newFloat(prec).Quo(one, ax)
		half := newFloat(prec).Quo(piAt(prec), newFloat(prec).SetInt64(2))
		r = newFloat(prec).Sub(half, atanCore(inv, prec))
	} else {
		r = atanCore(ax, prec)
	}
	if neg {
		r.Neg(r)
	}
	return r
}

// sinCosCore range-reduces x modulo 2*pi to a quadrant q in {0,1,2,3} and a
// reduced argument r in [0, pi/2), then evaluates the sine and cosine
// Taylor series on r and reassembles sin(x)/cos(x) by quadrant. Reducing to
// a quarter-turn keeps the series argument small enough to converge in a
// bounded number of terms regardless of how large x is.
func sinCosCore(x *big.Float, prec uint) (sinX, cosX *big.Float) {
	pi := piAt(prec)
	twoPi := newFloat(prec).Mul(pi, newFloat(prec).SetInt64(2))
	halfPi := newFloat(prec).Quo(pi, newFloat(prec).SetInt64(2))

	n := newFloat(prec).Quo(x, twoPi)
	nInt, _ := n.Int(nil)
	reduced := newFloat(prec).Sub(x, newFloat(prec).Mul(newFloat(prec).SetInt(nInt), twoPi))
	if reduced.Sign() < 0 {
		reduced.Add(reduced, twoPi)
	}

	qf := newFloat(prec).Quo(reduced, halfPi)
	qInt, _ := qf.Int64()
	if qInt > 3 {
		qInt = 3
	}
	r := newFloat(prec).Sub(reduced, newFloat(prec).Mul(newFloat(prec).SetInt64(qInt), halfPi))

	s := sinSeries(r, prec)
	c := cosSeries(r, prec)

	switch qInt % 4 {
	case 0:
		return s, c
	case 1:
		return c, newFloat(prec).Neg(s)
	case 2:
		return newFloat(prec).Neg(s), newFloat(prec).Neg(c)
	default:
		return newFloat(prec).Neg(c), s
	}
}

func sinSeries(r *big.Float, prec uint) *big.Float {
	r2 := newFloat(prec).Mul(r, r)
	sum := newFloat(prec).Set(r)
	term := newFloat(prec).Set(r)
	sign := -1.0
	for n := int64(1); n < 4000; n++ {
		term = newFloat(prec).Mul(term, r2)
		denom := newFloat(prec).SetInt64((2*n + 1) * (2 * n))
		add := newFloat(prec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, add)
		} else {
			sum.Add(sum, add)
		}
		sign = -sign
		if termNegligible(add, sum, prec) {
			break
		}
	}
	return sum
}

func cosSeries(r *big.Float, prec uint) *big.Float {
	r2 := newFloat(prec).Mul(r, r)
	sum := newFloat(prec).SetInt64(1)
	term := newFloat(prec).SetInt64(1)
	sign := -1.0
	for n := int64(1); n < 4000; n++ {
		term = newFloat(prec).Mul(term, r2)
		denom := newFloat(prec).SetInt64((2*n - 1) * (2 * n))
		add := newFloat(prec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, add)
		} else {
			sum.Add(sum, add)
		}
		sign = -sign
		if termNegligible(add, sum, prec) {
			break
		}
	}
	return sum
}

// sqrtCore delegates to big.Float's own Sqrt: a Newton iteration seeded
// from a binary-float approximation and run to the working precision,
// rather than a hand-rolled fixed number of manual steps.
func sqrtCore(x *big.Float, prec uint) *big.Float {
	return newFloat(prec).Sqrt(x)
}

// cbrtCore finds x^(1/3) for x > 0 by Newton iteration on f(y) = y^3 - x,
// seeded from the binary-float cube root (cbrtFloat64 of x's binary
// mantissa, rescaled by 2^(e/3) for x's binary exponent e), converging
// quadratically to the working precision.
func cbrtCore(x *big.Float, prec uint) *big.Float {
	mant := new(big.Float)
	e2 := x.MantExp(mant) // x = mant * 2^e2, mant in [0.5, 1)
	q, r := e2/3, e2%3
	if r < 0 {
		q, r = q-1, r+3
	}
	mf, _ := mant.Float64()
	seed := cbrtFloat64(mf * float64(int(1)<<uint(r)))
	y := newFloat(prec).SetMantExp(newFloat(prec).SetFloat64(seed), q)
	three := newFloat(prec).SetInt64(3)
	for i := 0; i < 200; i++ {
		y2 := newFloat(prec).Mul(y, y)
		y3 := newFloat(prec).Mul(y2, y)
		num := newFloat(prec).Add(newFloat(prec).Mul(two(prec), y3), x)
		denom := newFloat(prec).Mul(three, y2)
		next := newFloat(prec).Quo(num, denom)
		diff := newFloat(prec).Sub(next, y)
		y = next
		if diff.Sign() == 0 || termNegligible(diff, y, prec) {
			break
		}
	}
	return y
}

func two(prec uint) *big.Float { return newFloat(prec).SetInt64(2) }

func cbrtFloat64(x float64) float64 {
	if x == 0 {
		return 0
	}
	neg := x < 0
	if neg {
		x = -x
	}
	y := x
	if y <= 0 {
		y = 1
	}
	// a few Newton steps in float64 is plenty for a seed.
	for i := 0; i < 40; i++ {
		y = (2*y + x/(y*y)) / 3
	}
	if neg {
		y = -y
	}
	return y
}
