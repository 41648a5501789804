package conv

import (
	"strconv"

	"github.com/trippwill/decimal/imath"
	"github.com/trippwill/decimal/internal/components"
)

// FromInt64_32 converts v to a Triple32, narrowing modulo 10^precision with
// mode's tie-break rule if v needs more than precision digits.
func FromInt64_32(v int64, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	sign := v < 0
	mag := uint64(imath.Abs(v))
	if mag == 0 {
		return components.Zero32(sign), 0
	}
	return components.Normalize32(sign, mag, 0, mode, precision)
}

// ToInt64_32 truncates t toward zero and returns it as an int64. NaN and
// infinity raise InvalidOperation and return 0.
func ToInt64_32(t components.Triple32) (int64, components.Signal) {
	if t.Kind != components.KindFinite {
		return 0, components.SignalInvalidOperation
	}
	v, flags := scaleToInteger64(uint64(t.Significand), t.Exponent)
	if t.Sign {
		return -int64(v), flags
	}
	return int64(v), flags
}

func scaleToInteger64(sig uint64, exp int32) (uint64, components.Signal) {
	if exp == 0 {
		return sig, 0
	}
	if exp > 0 {
		for ; exp > 0; exp-- {
			sig *= 10
		}
		return sig, 0
	}
	var flags components.Signal
	for ; exp < 0; exp++ {
		if sig%10 != 0 {
			flags = components.SignalInexact
		}
		sig /= 10
	}
	return sig, flags
}

// FromFloat64_32 converts a float64 to a Triple32, rounded to precision
// significant digits. Special values (NaN, Inf) map to their Triple32
// counterparts.
func FromFloat64_32(f float64, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	sign, kind, ok := floatClass(f)
	if !ok {
		return components.Triple32{Kind: kind, Sign: sign}, 0
	}
	digits, exp := decomposeFloatDigits(abs64(f), precision+2)
	return components.Normalize32(sign, digitsToUint64(digits), exp, mode, precision)
}

// FromFloat32_32 converts a float32 to a Triple32.
func FromFloat32_32(f float32, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	return FromFloat64_32(float64(f), mode, precision)
}

// ToFloat64_32 returns the nearest float64 to t.
func ToFloat64_32(t components.Triple32) float64 {
	return recomposeFloat(t.Sign, t.Kind, strconv.FormatUint(uint64(t.Significand), 10), t.Exponent)
}

// ToFloat32_32 returns the nearest float32 to t.
func ToFloat32_32(t components.Triple32) float32 {
	return float32(ToFloat64_32(t))
}
