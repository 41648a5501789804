package conv

import (
	"strconv"

	"github.com/trippwill/decimal/imath"
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

// FromInt64_64 converts v to a Triple64, narrowing modulo 10^precision with
// mode's tie-break rule if v needs more than precision digits.
func FromInt64_64(v int64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	sign := v < 0
	mag := uint64(imath.Abs(v))
	if mag == 0 {
		return components.Zero64(sign), 0
	}
	return components.Normalize64(sign, bigint.U128FromUint64(mag), 0, mode, precision)
}

// ToInt64_64 truncates t toward zero and returns it as an int64. NaN and
// infinity raise InvalidOperation and return 0.
func ToInt64_64(t components.Triple64) (int64, components.Signal) {
	if t.Kind != components.KindFinite {
		return 0, components.SignalInvalidOperation
	}
	v, flags := scaleToInteger64(t.Significand, t.Exponent)
	if t.Sign {
		return -int64(v), flags
	}
	return int64(v), flags
}

// FromFloat64_64 converts a float64 to a Triple64, rounded to precision
// significant digits.
func FromFloat64_64(f float64, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	sign, kind, ok := floatClass(f)
	if !ok {
		return components.Triple64{Kind: kind, Sign: sign}, 0
	}
	digits, exp := decomposeFloatDigits(abs64(f), precision+2)
	return components.Normalize64(sign, digitsToU128(digits), exp, mode, precision)
}

// FromFloat32_64 converts a float32 to a Triple64.
func FromFloat32_64(f float32, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	return FromFloat64_64(float64(f), mode, precision)
}

// ToFloat64_64 returns the nearest float64 to t.
func ToFloat64_64(t components.Triple64) float64 {
	return recomposeFloat(t.Sign, t.Kind, strconv.FormatUint(t.Significand, 10), t.Exponent)
}

// ToFloat32_64 returns the nearest float32 to t.
func ToFloat32_64(t components.Triple64) float32 {
	return float32(ToFloat64_64(t))
}
