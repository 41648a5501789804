package arith

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

func pickNaN64(a, b components.Triple64) (result components.Triple64, flags components.Signal, isNaN bool) {
	aNaN, bNaN := a.Kind.IsNaN(), b.Kind.IsNaN()
	if !aNaN && !bNaN {
		return components.Triple64{}, 0, false
	}
	if a.Kind == components.KindSignalingNaN {
		return quietNaN64(a), components.SignalInvalidOperation, true
	}
	if b.Kind == components.KindSignalingNaN {
		return quietNaN64(b), components.SignalInvalidOperation, true
	}
	if aNaN {
		return quietNaN64(a), 0, true
	}
	return quietNaN64(b), 0, true
}

func quietNaN64(n components.Triple64) components.Triple64 {
	return components.Triple64{Kind: components.KindQuietNaN, Sign: n.Sign, Significand: n.Significand}
}

// Add64 returns a+b rounded to precision digits.
func Add64(a, b components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if res, flags, isNaN := pickNaN64(a, b); isNaN {
		return res, flags
	}
	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		return addInf64(a, b)
	}

	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}

	aScaled := scaleUp64(a.Significand, a.Exponent-minExp, precision)
	bScaled := scaleUp64(b.Significand, b.Exponent-minExp, precision)

	var sign bool
	var widened bigint.U128
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

	return components.Normalize64(sign, widened, minExp, mode, precision)
}

func addInf64(a, b components.Triple64) (components.Triple64, components.Signal) {
	if a.Kind == components.KindInfinity && b.Kind == components.KindInfinity {
		if a.Sign != b.Sign {
			return components.Triple64{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return a, 0
	}
	if a.Kind == components.KindInfinity {
		return a, 0
	}
	return b, 0
}

// scaleUp64 multiplies x by 10^diff (diff >= 0) in the widened U128 domain,
// since a 16-digit significand plus guard digits can exceed uint64's range.
// diff is capped at precision+2 guard digits, since any further alignment
// cannot affect a correctly-rounded result.
func scaleUp64(x uint64, diff int32, precision int) bigint.U128 {
	wide := bigint.U128FromUint64(x)
	n := int(diff)
	if n <= 0 {
		return wide
	}
	if n > precision+2 {
		n = precision + 2
	}
	return wide.Mul(bigint.Pow10(n))
}

// Sub64 returns a-b rounded to precision digits.
func Sub64(a, b components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return Add64(a, Neg64(b), mode, precision)
}

// Neg64 returns -a.
func Neg64(a components.Triple64) components.Triple64 {
	n := a
	n.Sign = !a.Sign
	return n
}

// Abs64 returns |a|.
func Abs64(a components.Triple64) components.Triple64 {
	n := a
	n.Sign = false
	return n
}

// Mul64 returns a*b rounded to precision digits.
func Mul64(a, b components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if res, flags, isNaN := pickNaN64(a, b); isNaN {
		return res, flags
	}

	sign := a.Sign != b.Sign

	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		if a.IsZero() || b.IsZero() {
			return components.Triple64{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return components.Infinity64(sign), 0
	}

	product := bigint.Mul64(a.Significand, b.Significand)
	exp := a.Exponent + b.Exponent
	return components.Normalize64(sign, product, exp, mode, precision)
}

// Quo64 returns a/b rounded to precision digits.
func Quo64(a, b components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if res, flags, isNaN := pickNaN64(a, b); isNaN {
		return res, flags
	}

	sign := a.Sign != b.Sign

	switch {
	case a.Kind == components.KindInfinity && b.Kind == components.KindInfinity:
		return components.Triple64{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
	case a.Kind == components.KindInfinity:
		return components.Infinity64(sign), 0
	case b.Kind == components.KindInfinity:
		return components.Zero64(sign), 0
	}

	if b.IsZero() {
		if a.IsZero() {
			return components.Triple64{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return components.Infinity64(sign), components.SignalDivisionByZero
	}
	if a.IsZero() {
		return components.Zero64(sign), 0
	}

	dividend := bigint.U128FromUint64(a.Significand)
	divisor := bigint.U128FromUint64(b.Significand)

	k := (components.DigitCount64(b.Significand) + precision + 2) - components.DigitCount64(a.Significand)
	if k < 0 {
		k = 0
	}
	scaledDividend := dividend.Mul(bigint.Pow10(k))

	q, r := scaledDividend.QuoRem(divisor)
	sticky := bigint.U128{}
	if !r.IsZero() {
		sticky = bigint.U128FromUint64(1)
	}
	sig := q.Mul(bigint.U128FromUint64(10)).Add(sticky)
	exp := a.Exponent - b.Exponent - int32(k) - 1

	return components.Normalize64(sign, sig, exp, mode, precision)
}

// Rem64 returns the truncated remainder (fmod) of a with respect to b:
// a - n*b, where n is a/b truncated toward zero; the result carries a's sign.
func Rem64(a, b components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if res, flags, isNaN := pickNaN64(a, b); isNaN {
		return res, flags
	}
	if b.IsZero() || a.Kind == components.KindInfinity {
		return components.Triple64{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
	}
	if b.Kind == components.KindInfinity || a.IsZero() {
		return a, 0
	}

	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}
	// Align in the U256 domain: a 16-digit significand plus up to ~40
	// guard digits of alignment still fits comfortably, unlike U128.
	aScaled := scaleUp64Wide256(a.Significand, a.Exponent-minExp)
	bScaled := scaleUp64Wide256(b.Significand, b.Exponent-minExp)

	_, r := aScaled.QuoRem(bScaled)
	sig := r.Lo128()
	return components.Normalize64(a.Sign, sig, minExp, mode, precision)
}

// scaleUp64Wide256 scales x by 10^diff (diff >= 0) in the U256 domain,
// capped at 2*P64 guard digits — beyond that, the operand with the far
// smaller exponent can no longer influence an exact remainder.
func scaleUp64Wide256(x uint64, diff int32) bigint.U256 {
	n := int(diff)
	if n > 2*components.P64 {
		n = 2 * components.P64
	}
	if n <= 0 {
		return bigint.U256FromUint64(x)
	}
	return bigint.U256FromUint64(x).Mul(bigint.Pow10_256(n))
}

// Compare64 compares a and b; ok is false when either is NaN.
func Compare64(a, b components.Triple64) (cmp int, ok bool) {
	if a.Kind.IsNaN() || b.Kind.IsNaN() {
		return 0, false
	}
	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		return compareInt(infOrdinal64(a), infOrdinal64(b)), true
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

	rankA := int(a.Exponent) + components.DigitCount64(a.Significand)
	rankB := int(b.Exponent) + components.DigitCount64(b.Significand)
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
	aScaled := scaleUp64(a.Significand, a.Exponent-minExp, 2*components.P64)
	bScaled := scaleUp64(b.Significand, b.Exponent-minExp, 2*components.P64)

	c := aScaled.Cmp(bScaled)
	if a.Sign {
		c = -c
	}
	return c, true
}

func infOrdinal64(t components.Triple64) int {
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

// FMA64 returns a*b+c, rounded once for the product and once for the sum
// (see FMA32's doc comment on why this is double-rounded rather than a
// true single-rounding fused multiply-add).
func FMA64(a, b, c components.Triple64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	product, flags := Mul64(a, b, mode, precision)
	sum, f2 := Add64(product, c, mode, precision)
	return sum, flags | f2
}
