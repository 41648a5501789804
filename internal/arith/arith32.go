// Package arith implements the arithmetic kernel over Components: add,
// subtract, multiply, divide, remainder, fused multiply-add, comparison and
// negation, with the special-value rules of IEEE 754-2008 §6 and §7 for
// cohorts, signed zero, infinities and NaN propagation. One file per width,
// since each width's widened working type differs (uint64/U128/U256) and
// keeping 32- and 64-bit paths in separate files reads clearer than one
// behind a shared generic.
package arith

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

// pickNaN32 implements the operand-validation rule common to every binary
// operation: a signaling NaN operand is returned quieted with
// InvalidOperation raised; otherwise the first NaN operand (quieted) wins;
// otherwise ok is true and the caller proceeds with finite/infinite logic.
func pickNaN32(a, b components.Triple32) (result components.Triple32, flags components.Signal, isNaN bool) {
	aNaN, bNaN := a.Kind.IsNaN(), b.Kind.IsNaN()
	if !aNaN && !bNaN {
		return components.Triple32{}, 0, false
	}
	if a.Kind == components.KindSignalingNaN {
		return quietNaN32(a), components.SignalInvalidOperation, true
	}
	if b.Kind == components.KindSignalingNaN {
		return quietNaN32(b), components.SignalInvalidOperation, true
	}
	if aNaN {
		return quietNaN32(a), 0, true
	}
	return quietNaN32(b), 0, true
}

func quietNaN32(n components.Triple32) components.Triple32 {
	return components.Triple32{Kind: components.KindQuietNaN, Sign: n.Sign, Significand: n.Significand}
}

// Add32 returns a+b rounded to precision digits.
func Add32(a, b components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if res, flags, isNaN := pickNaN32(a, b); isNaN {
		return res, flags
	}

	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		return addInf32(a, b)
	}

	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}

	aScaled := scaleUp32(uint64(a.Significand), a.Exponent-minExp, precision)
	bScaled := scaleUp32(uint64(b.Significand), b.Exponent-minExp, precision)

	var sign bool
	var widened uint64
	if a.Sign == b.Sign {
		widened = aScaled + bScaled
		sign = a.Sign
	} else {
		if aScaled >= bScaled {
			widened = aScaled - bScaled
			sign = a.Sign
		} else {
			widened = bScaled - aScaled
			sign = b.Sign
		}
		if widened == 0 {
			// Sum of opposite-signed equal magnitudes is +0, except under
			// round-toward-negative where it is -0 (IEEE 754-2008 §6.3).
			sign = mode == components.RoundTowardNegative
		}
	}

	return components.Normalize32(sign, widened, minExp, mode, precision)
}

func addInf32(a, b components.Triple32) (components.Triple32, components.Signal) {
	if a.Kind == components.KindInfinity && b.Kind == components.KindInfinity {
		if a.Sign != b.Sign {
			return components.Triple32{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return a, 0
	}
	if a.Kind == components.KindInfinity {
		return a, 0
	}
	return b, 0
}

// scaleUp32 multiplies x by 10^diff (diff >= 0), capping diff at
// precision+2 guard digits since any further alignment cannot affect a
// correctly-rounded result.
func scaleUp32(x uint64, diff int32, precision int) uint64 {
	n := int(diff)
	if n <= 0 {
		return x
	}
	if n > precision+2 {
		n = precision + 2
	}
	for i := 0; i < n; i++ {
		x *= 10
	}
	return x
}

// Sub32 returns a-b rounded to precision digits.
func Sub32(a, b components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return Add32(a, Neg32(b), mode, precision)
}

// Neg32 returns -a. The sign is flipped for every operand, NaNs included,
// and no signal is raised, not even for a signaling NaN.
func Neg32(a components.Triple32) components.Triple32 {
	n := a
	n.Sign = !a.Sign
	return n
}

// Abs32 returns |a|.
func Abs32(a components.Triple32) components.Triple32 {
	n := a
	n.Sign = false
	return n
}

// Mul32 returns a*b rounded to precision digits.
func Mul32(a, b components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if res, flags, isNaN := pickNaN32(a, b); isNaN {
		return res, flags
	}

	sign := a.Sign != b.Sign

	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		if a.IsZero() || b.IsZero() {
			return components.Triple32{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return components.Infinity32(sign), 0
	}

	product := uint64(a.Significand) * uint64(b.Significand)
	exp := a.Exponent + b.Exponent
	return components.Normalize32(sign, product, exp, mode, precision)
}

// Quo32 returns a/b rounded to precision digits.
func Quo32(a, b components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if res, flags, isNaN := pickNaN32(a, b); isNaN {
		return res, flags
	}

	sign := a.Sign != b.Sign

	switch {
	case a.Kind == components.KindInfinity && b.Kind == components.KindInfinity:
		return components.Triple32{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
	case a.Kind == components.KindInfinity:
		return components.Infinity32(sign), 0
	case b.Kind == components.KindInfinity:
		return components.Zero32(sign), 0
	}

	if b.IsZero() {
		if a.IsZero() {
			return components.Triple32{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
		}
		return components.Infinity32(sign), components.SignalDivisionByZero
	}
	if a.IsZero() {
		return components.Zero32(sign), 0
	}

	dividend := uint64(a.Significand)
	divisor := uint64(b.Significand)

	k := (components.DigitCount64(divisor) + precision + 2) - components.DigitCount64(dividend)
	if k < 0 {
		k = 0
	}
	scaledDividend := dividend * components.Pow10_64(k)

	q := scaledDividend / divisor
	r := scaledDividend % divisor
	sticky := uint64(0)
	if r != 0 {
		sticky = 1
	}
	sig := q*10 + sticky
	exp := a.Exponent - b.Exponent - int32(k) - 1

	return components.Normalize32(sign, sig, exp, mode, precision)
}

// Rem32 returns the truncated remainder (fmod) of a with respect to b:
// a - n*b, where n is a/b truncated toward zero; the result carries a's sign.
func Rem32(a, b components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if res, flags, isNaN := pickNaN32(a, b); isNaN {
		return res, flags
	}
	if b.IsZero() || a.Kind == components.KindInfinity {
		return components.Triple32{Kind: components.KindQuietNaN}, components.SignalInvalidOperation
	}
	if b.Kind == components.KindInfinity || a.IsZero() {
		return a, 0
	}

	// Align in the U128 domain, capped well under its ~38-digit capacity
	// even after adding the 7-digit native significand.
	minExp := a.Exponent
	if b.Exponent < minExp {
		minExp = b.Exponent
	}
	const remGuardDigits = 25
	aScaled := scaleUp32Wide128(uint64(a.Significand), a.Exponent-minExp, remGuardDigits)
	bScaled := scaleUp32Wide128(uint64(b.Significand), b.Exponent-minExp, remGuardDigits)

	_, r := aScaled.QuoRem(bScaled)
	sig := r.Lo
	return components.Normalize32(a.Sign, sig, minExp, mode, precision)
}

func scaleUp32Wide128(x uint64, diff int32, guard int) bigint.U128 {
	wide := bigint.U128FromUint64(x)
	n := int(diff)
	if n <= 0 {
		return wide
	}
	if n > guard {
		n = guard
	}
	return wide.Mul(bigint.Pow10(n))
}

// Compare32 implements IEEE 754-2008 totalOrder-free comparison: -1, 0, 1,
// or reports NaN via the ok=false return (comparisons involving NaN are
// unordered).
func Compare32(a, b components.Triple32) (cmp int, ok bool) {
	if a.Kind.IsNaN() || b.Kind.IsNaN() {
		return 0, false
	}

	if a.Kind == components.KindInfinity || b.Kind == components.KindInfinity {
		av, bv := infOrdinal(a), infOrdinal(b)
		return compareInt(av, bv), true
	}

	if a.IsZero() && b.IsZero() {
		return 0, true
	}
	// A zero's exponent is cohort-preserving and can be arbitrarily large
	// (e.g. the result of subtracting two equal large values), so it must
	// be ruled out here rather than falling into the rank fast-path below,
	// which would compare that stale exponent as if it were a magnitude.
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

	// Any difference in rank (digit position of the leading digit) decides
	// the comparison; only equal ranks need exact alignment.
	rankA, rankB := int(a.Exponent)+components.DigitCount32(a.Significand), int(b.Exponent)+components.DigitCount32(b.Significand)
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
	aScaled := scaleUp32(uint64(a.Significand), a.Exponent-minExp, 2*components.P32)
	bScaled := scaleUp32(uint64(b.Significand), b.Exponent-minExp, 2*components.P32)

	c := compareUint64(aScaled, bScaled)
	if a.Sign {
		c = -c
	}
	return c, true
}

func infOrdinal(t components.Triple32) int {
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

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FMA32 returns a*b+c, rounded once to compute the product and once to
// round the sum (a double-rounded approximation of fused multiply-add:
// Normalize32 only accepts precision up to P32, so the exact, wider
// product cannot be carried unrounded into the addition step the way a
// true single-rounding FMA would).
func FMA32(a, b, c components.Triple32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	product, flags := Mul32(a, b, mode, precision)
	sum, f2 := Add32(product, c, mode, precision)
	return sum, flags | f2
}
