// Package conv implements the conversions between Components triples and
// the host language's native numeric types: signed integers, binary
// floating point (float32/float64, plus the narrower float16 via a real
// ecosystem codec), and the inter-precision widening/narrowing between the
// three decimal widths.
package conv

import (
	"math"
	"strconv"

	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

// floatClass classifies a float64 ahead of decimal decomposition: ok is
// false for NaN, +-Inf and +-0, each already fully described by sign/kind.
func floatClass(f float64) (sign bool, kind components.Kind, ok bool) {
	switch {
	case math.IsNaN(f):
		return false, components.KindQuietNaN, false
	case math.IsInf(f, 1):
		return false, components.KindInfinity, false
	case math.IsInf(f, -1):
		return true, components.KindInfinity, false
	case f == 0:
		return math.Signbit(f), components.KindFinite, false
	}
	return math.Signbit(f), components.KindFinite, true
}

// sciDigits splits a strconv.FormatFloat(..., 'e', n, 64) string
// ("d.ddddde±dd") into its bare digit sequence (no sign, no point) and the
// decimal exponent of the final digit.
func sciDigits(text string) (digits string, exp int32) {
	ePos := 0
	for i := 0; i < len(text); i++ {
		if text[i] == 'e' {
			ePos = i
			break
		}
	}
	mantissa := text[:ePos]
	e, _ := strconv.Atoi(text[ePos+1:])

	var b []byte
	fracLen := 0
	seenPoint := false
	for i := 0; i < len(mantissa); i++ {
		c := mantissa[i]
		switch {
		case c == '.':
			seenPoint = true
		case c >= '0' && c <= '9':
			b = append(b, c)
			if seenPoint {
				fracLen++
			}
		}
	}
	return string(b), int32(e) - int32(fracLen)
}

// decomposeFloatDigits extracts guardDigits+1 correctly-rounded decimal
// significant digits from abs (already known finite and nonzero), wide
// enough that a subsequent Normalize call rounds to the caller's target
// precision rather than double-rounding against strconv's own rounding.
//
// This leans on strconv.FormatFloat's correctly-rounded binary-to-decimal
// conversion rather than a hand-rolled Ryu-style power-of-five table walk:
// no library in the retrieval pack implements bit-exact binary/decimal
// re-expression (x448/float16 only converts float16 <-> float32), and
// strconv is the one sanctioned stdlib exception to "never fall back to
// stdlib", since it is the literal primitive the conversion needs.
func decomposeFloatDigits(abs float64, guardDigits int) (string, int32) {
	text := strconv.FormatFloat(abs, 'e', guardDigits, 64)
	return sciDigits(text)
}

func abs64(f float64) float64 { return math.Abs(f) }

func digitsToUint64(digits string) uint64 {
	var v uint64
	for i := 0; i < len(digits); i++ {
		v = v*10 + uint64(digits[i]-'0')
	}
	return v
}

func digitsToU128(digits string) bigint.U128 {
	v := bigint.U128{}
	ten := bigint.U128FromUint64(10)
	for i := 0; i < len(digits); i++ {
		v = v.Mul(ten).Add(bigint.U128FromUint64(uint64(digits[i] - '0')))
	}
	return v
}

func digitsToU256(digits string) bigint.U256 {
	v := bigint.U256{}
	ten := bigint.U256FromUint64(10)
	for i := 0; i < len(digits); i++ {
		v = v.Mul(ten).Add(bigint.U256FromUint64(uint64(digits[i] - '0')))
	}
	return v
}

// recomposeFloat reassembles a decimal triple's value into the nearest
// float64 via strconv.ParseFloat on its exact decimal text — the inverse
// of decomposeFloatDigits, and for the same reason: ParseFloat is stdlib's
// correctly-rounded decimal-to-binary primitive, matching the
// "compute_float64" contract without a hand-rolled fast/slow power table.
func recomposeFloat(sign bool, kind components.Kind, sigText string, exp int32) float64 {
	switch kind {
	case components.KindInfinity:
		if sign {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case components.KindQuietNaN, components.KindSignalingNaN:
		return math.NaN()
	}
	if sigText == "" || sigText == "0" {
		if sign {
			return math.Copysign(0, -1)
		}
		return 0
	}

	text := sigText + "e" + strconv.FormatInt(int64(exp), 10)
	v, _ := strconv.ParseFloat(text, 64)
	if sign {
		v = -v
	}
	return v
}
