package conv

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

// Widen32To64 widens a Triple32 into a Triple64: the significand and
// exponent carry over unchanged (a 7-digit value always fits losslessly in
// 16 digits), so no rounding occurs.
func Widen32To64(t components.Triple32) components.Triple64 {
	return components.Triple64{Kind: t.Kind, Sign: t.Sign, Significand: uint64(t.Significand), Exponent: t.Exponent}
}

// Widen64To128 widens a Triple64 into a Triple128; no rounding occurs.
func Widen64To128(t components.Triple64) components.Triple128 {
	return components.Triple128{Kind: t.Kind, Sign: t.Sign, Significand: bigint.U128FromUint64(t.Significand), Exponent: t.Exponent}
}

// Widen32To128 widens a Triple32 directly into a Triple128.
func Widen32To128(t components.Triple32) components.Triple128 {
	return Widen64To128(Widen32To64(t))
}

// Narrow64To32 narrows a Triple64 into a Triple32, rounding to precision
// digits via Normalize32 per §4.4's rounding contract.
func Narrow64To32(t components.Triple64, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if t.Kind != components.KindFinite {
		return components.Triple32{Kind: t.Kind, Sign: t.Sign}, 0
	}
	return components.Normalize32(t.Sign, t.Significand, t.Exponent, mode, precision)
}

// Narrow128To64 narrows a Triple128 into a Triple64, rounding to precision
// digits via Normalize64.
func Narrow128To64(t components.Triple128, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	if t.Kind != components.KindFinite {
		return components.Triple64{Kind: t.Kind, Sign: t.Sign}, 0
	}
	return components.Normalize64(t.Sign, t.Significand, t.Exponent, mode, precision)
}

// Narrow128To32 narrows a Triple128 directly into a Triple32. The
// significand may carry up to 34 digits, far more than uint64's ~19-digit
// capacity, so it is pre-reduced to fit before Normalize32 takes over the
// final rounding to precision digits.
func Narrow128To32(t components.Triple128, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	if t.Kind != components.KindFinite {
		return components.Triple32{Kind: t.Kind, Sign: t.Sign}, 0
	}
	sig, exp, flags := fitU128InUint64(t.Significand, t.Exponent, mode, t.Sign)
	res, removed := components.Normalize32(t.Sign, sig, exp, mode, precision)
	return res, flags | removed
}

// fitU128InUint64 reduces sig to at most 19 decimal digits (uint64's
// capacity) by discarding trailing digits, applying mode's tie-break rule,
// and returns the adjusted exponent so the value is unchanged.
func fitU128InUint64(sig bigint.U128, exp int32, mode components.Rounding, sign bool) (uint64, int32, components.Signal) {
	const keep = 19
	d := sig.DecimalDigits()
	if d <= keep {
		return sig.Lo, exp, 0
	}
	drop := d - keep
	divisor := bigint.Pow10(drop)
	q, r := sig.QuoRem(divisor)
	var flags components.Signal
	if !r.IsZero() {
		flags = components.SignalInexact
		half := divisor.Rsh(1)
		cmp := r.Cmp(half)
		if roundUpU128(mode, cmp, q.Lo%2 == 1, sign) {
			q = q.Add(bigint.U128FromUint64(1))
		}
	}
	return q.Lo, exp + int32(drop), flags
}

// roundUpU128 mirrors the tie-break decision Normalize's own rounding
// helpers make, exposed here because this reduction happens a step before
// Normalize32 can apply it itself.
func roundUpU128(mode components.Rounding, cmpHalf int, quotientOdd, sign bool) bool {
	switch mode {
	case components.RoundTiesToEven:
		if cmpHalf > 0 {
			return true
		}
		if cmpHalf == 0 {
			return quotientOdd
		}
		return false
	case components.RoundTiesToAway:
		return cmpHalf >= 0
	case components.RoundTowardZero:
		return false
	case components.RoundTowardPositive:
		return !sign
	case components.RoundTowardNegative:
		return sign
	default:
		return false
	}
}
