package conv

import (
	"github.com/trippwill/decimal/imath"
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

// FromInt64_128 converts v to a Triple128, narrowing modulo 10^precision
// with mode's tie-break rule if v needs more than precision digits.
func FromInt64_128(v int64, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	sign := v < 0
	mag := uint64(imath.Abs(v))
	if mag == 0 {
		return components.Zero128(sign), 0
	}
	return components.Normalize128(sign, bigint.U256FromUint64(mag), 0, mode, precision)
}

// ToInt64_128 truncates t toward zero and returns it as an int64. NaN,
// infinity and magnitudes beyond int64's range raise InvalidOperation or
// Overflow respectively and return 0.
func ToInt64_128(t components.Triple128) (int64, components.Signal) {
	if t.Kind != components.KindFinite {
		return 0, components.SignalInvalidOperation
	}

	sig := t.Significand
	exp := t.Exponent
	var flags components.Signal

	// int64 holds at most 19 decimal digits; anything wider than that
	// after scaling by a positive exponent has already overflowed, without
	// needing to carry out the (potentially huge) multiplication that
	// would otherwise silently wrap modulo 2^128.
	if exp > 0 && sig.DecimalDigits()+int(exp) > 19 {
		return 0, components.SignalOverflow
	}

	ten := bigint.U128FromUint64(10)
	for exp > 0 {
		sig = sig.Mul(ten)
		exp--
	}
	for exp < 0 {
		q, r := sig.QuoRem(ten)
		if !r.IsZero() {
			flags |= components.SignalInexact
		}
		sig = q
		exp++
	}

	if sig.Hi != 0 || sig.Lo > 1<<63 || (sig.Lo == 1<<63 && !t.Sign) {
		return 0, flags | components.SignalOverflow
	}
	v := int64(sig.Lo)
	if t.Sign {
		v = -v
	}
	return v, flags
}

// FromFloat64_128 converts a float64 to a Triple128, rounded to precision
// significant digits.
func FromFloat64_128(f float64, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	sign, kind, ok := floatClass(f)
	if !ok {
		return components.Triple128{Kind: kind, Sign: sign}, 0
	}
	digits, exp := decomposeFloatDigits(abs64(f), precision+2)
	return components.Normalize128(sign, digitsToU256(digits), exp, mode, precision)
}

// FromFloat32_128 converts a float32 to a Triple128.
func FromFloat32_128(f float32, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	return FromFloat64_128(float64(f), mode, precision)
}

// ToFloat64_128 returns the nearest float64 to t.
func ToFloat64_128(t components.Triple128) float64 {
	return recomposeFloat(t.Sign, t.Kind, t.Significand.String(), t.Exponent)
}

// ToFloat32_128 returns the nearest float32 to t.
func ToFloat32_128(t components.Triple128) float32 {
	return float32(ToFloat64_128(t))
}
