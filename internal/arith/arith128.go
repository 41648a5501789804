package arith

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

func pickNaN128(a, b components.Triple128) (result components.Triple128, flags components.Signal, isNaN bool) {
	aNaN, bNaN := a.Kind.IsNaN(), b.Kind.IsNaN()
	if !aNaN && !bNaN {
		return components.Triple128{}, 0, false
	}
	if a.Kind == components.KindSignalingNaN {
		return quietNaN128(a), components.SignalInvalidOperation, true
	}
	if b.Kind == components.KindSignalingNaN {
		return quietNaN128(b), components.SignalInvalidOperation, true
	}
	if aNaN {
		return quietNaN128(a), 0, true
	}
	return quietNaN128(b), 0, true
}

func quietNaN128(n components.Triple128) components.Triple128 {
	return components.Triple128{Kind: components.KindQuietNaN, Sign: n.Sign, Significand: n.Significand}
}

// Add128 returns a+b rounded to precision digits.
func Add128(a, b components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	if res, flags, isNaN := pickNaN128(a, b); isNaN {
		return res, flags
	}
	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		return addInf128(a, b)
	}

	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}

	aScaled := scaleUp128(a.Significand, a.Exponent-minExp, precision)
	bScaled := scaleUp128(b.Significand, b.Exponent-minExp, precision)

	var sign bool
	var widened bigint.U256
	if a.Sign == b.Sign {
		widened = aScaled.Add(bScaled)
		sign = a.Sign
	} else {
		if aScaled.Cmp(bScaled) >= 0 {
			widened = aScaled.Sub(bScaled)
			sign = a.Sign
		} else {
			widened = bScaled.Sub(aScaled)
			sign = b.Sign
		}
		if widened.IsZero() {
			sign = mode == components.RoundTowardNegative
		}
	}

	return components.Normalize128(sign, widened, minExp, mode, precision)
}

func addInf128(a, b components.Triple128) (components.Triple128, components.Signal) {
	if a.Kind == components.KindInfinity && b.Kind == components.KindInfinity {
		if a.Sign != b.Sign {
			return components.Triple128{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return a, 0
	}
	if a.Kind == components.KindInfinity {
		return a, 0
	}
	return b, 0
}

// scaleUp128 multiplies x by 10^diff (diff >= 0) in the widened U256
// domain, capped at precision+2 guard digits since any further alignment
// cannot affect a correctly-rounded result.
func scaleUp128(x bigint.U128, diff int32, precision int) bigint.U256 {
	wide := bigint.U256FromU128(x)
	n := int(diff)
	if n <= 0 {
		return wide
	}
	if n > precision+2 {
		n = precision + 2
	}
	return wide.Mul(bigint.Pow10_256(n))
}

// Sub128 returns a-b rounded to precision digits.
func Sub128(a, b components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return Add128(a, Neg128(b), mode, precision)
}

// Neg128 returns -a.
func Neg128(a components.Triple128) components.Triple128 {
	n := a
	n.Sign = !a.Sign
	return n
}

// Abs128 returns |a|.
func Abs128(a components.Triple128) components.Triple128 {
	n := a
	n.Sign = false
	return n
}

// Mul128 returns a*b rounded to precision digits.
func Mul128(a, b components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	if res, flags, isNaN := pickNaN128(a, b); isNaN {
		return res, flags
	}

	sign := a.Sign != b.Sign

	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		if a.IsZero() || b.IsZero() {
			return components.Triple128{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return components.Infinity128(sign), 0
	}

	product := a.Significand.WideningMul(b.Significand)
	exp := a.Exponent + b.Exponent
	return components.Normalize128(sign, product, exp, mode, precision)
}

// Quo128 returns a/b rounded to precision digits.
func Quo128(a, b components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	if res, flags, isNaN := pickNaN128(a, b); isNaN {
		return res, flags
	}

	sign := a.Sign != b.Sign

	switch {
	case a.Kind == components.KindInfinity && b.Kind == components.KindInfinity:
		return components.Triple128{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
	case a.Kind == components.KindInfinity:
		return components.Infinity128(sign), 0
	case b.Kind == components.KindInfinity:
		return components.Zero128(sign), 0
	}

	if b.IsZero() {
		if a.IsZero() {
			return components.Triple128{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return components.Infinity128(sign), components.SignalDivisionByZero
	}
	if a.IsZero() {
		return components.Zero128(sign), 0
	}

	dividend := bigint.U256FromU128(a.Significand)
	divisor := bigint.U256FromU128(b.Significand)

	k := (b.Significand.DecimalDigits() + precision + 2) - a.Significand.DecimalDigits()
	if k < 0 {
		k = 0
	}
	scaledDividend := dividend.Mul(bigint.Pow10_256(k))

	q, r := scaledDividend.QuoRem(divisor)
	sticky := bigint.U256{}
	if !r.IsZero() {
		sticky = bigint.U256FromUint64(1)
	}
	sig := q.Mul(bigint.U256FromUint64(10)).Add(sticky)
	exp := a.Exponent - b.Exponent - int32(k) - 1

	return components.Normalize128(sign, sig, exp, mode, precision)
}

// Rem128 returns the truncated remainder (fmod) of a with respect to b:
// a - n*b, where n is a/b truncated toward zero; the result carries a's sign.
func Rem128(a, b components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	if res, flags, isNaN := pickNaN128(a, b); isNaN {
		return res, flags
	}
	if b.IsZero() || a.Kind == components.KindInfinity {
		return components.Triple128{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
	}
	if b.Kind == components.KindInfinity || a.IsZero() {
		return a, 0
	}

	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}
	// Capped well under U256's ~77-digit capacity even after adding the
	// 34-digit native significand, unlike Compare128's cap (safe there
	// only because the rank check above already bounds the real diff).
	const remGuardDigits = 40
	aScaled := scaleUp128(a.Significand, a.Exponent-minExp, remGuardDigits)
	bScaled := scaleUp128(b.Significand, b.Exponent-minExp, remGuardDigits)

	_, r := aScaled.QuoRem(bScaled)
	sig := r.Lo128()
	return components.Normalize128(a.Sign, bigint.U256FromU128(sig), minExp, mode, precision)
}

// Compare128 compares a and b; ok is false when either is NaN.
func Compare128(a, b components.Triple128) (cmp int, ok bool) {
	if a.Kind.IsNaN() || b.Kind.IsNaN() {
		return 0, false
	}
	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		return compareInt(infOrdinal128(a), infOrdinal128(b)), true
	}
	if a.IsZero() && b.IsZero() {
		return 0, true
	}
	// A zero's exponent is cohort-preserving and can be arbitrarily large,
	// so it must be ruled out here rather than falling into the rank
	// fast-path below, which would compare that stale exponent as if it
	// were a magnitude.
	if a.IsZero() != b.IsZero() {
		if a.IsZero() {
			if b.Sign {
				return 1, true
			}
			return -1, true
		}
		if a.Sign {
			return -1, true
		}
		return 1, true
	}
	if a.Sign != b.Sign {
		if a.Sign {
			return -1, true
		}
		return 1, true
	}

	rankA := int(a.Exponent) + a.Significand.DecimalDigits()
	rankB := int(b.Exponent) + b.Significand.DecimalDigits()
	if rankA != rankB {
		c := compareInt(rankA, rankB)
		if a.Sign {
			c = -c
		}
		return c, true
	}

	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}
	aScaled := scaleUp128(a.Significand, a.Exponent-minExp, 2*components.P128)
	bScaled := scaleUp128(b.Significand, b.Exponent-minExp, 2*components.P128)

	c := aScaled.Cmp(bScaled)
	if a.Sign {
		c = -c
	}
	return c, true
}

func infOrdinal128(t components.Triple128) int {
	switch {
	case t.Kind == components.KindInfinity && t.Sign:
		return -2
	case t.Kind == components.KindInfinity:
		return 2
	case t.Sign:
		return -1
	default:
		return 1
	}
}

// FMA128 returns a*b+c, rounded once for the product and once for the sum
// (see FMA32's doc comment on why this is double-rounded rather than a
// true single-rounding fused multiply-add).
func FMA128(a, b, c components.Triple128, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	product, flags := Mul128(a, b, mode, precision)
	sum, f2 := Add128(product, c, mode, precision)
	return sum, flags | f2
}
