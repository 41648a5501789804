package mathfn

import (
	"math/big"
	"strconv"

	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

// toBigFloat32 converts a finite, nonzero Triple32 into a big.Float of the
// given working precision: significand as an exact big.Int, scaled by
// 10^exponent.
func toBigFloat32(t components.Triple32, prec uint) *big.Float {
	return scaleBySig(newFloat(prec).SetUint64(uint64(t.Significand)), t.Exponent, prec, t.Sign)
}

func toBigFloat64(t components.Triple64, prec uint) *big.Float {
	return scaleBySig(newFloat(prec).SetUint64(t.Significand), t.Exponent, prec, t.Sign)
}

func toBigFloat128(t components.Triple128, prec uint) *big.Float {
	i := new(big.Int).SetBytes(u128Bytes(t.Significand))
	return scaleBySig(newFloat(prec).SetInt(i), t.Exponent, prec, t.Sign)
}

func u128Bytes(u bigint.U128) []byte {
	b := make([]byte, 16)
	for i := 0; i < 8; i++ {
		b[7-i] = byte(u.Hi >> (8 * i))
		b[15-i] = byte(u.Lo >> (8 * i))
	}
	return b
}

// scaleBySig multiplies (or divides) mag by 10^|exp|, computed exactly as a
// big.Int power first so a wide decimal128 exponent (up to several
// thousand) costs one big.Int.Exp call rather than thousands of rounded
// big.Float multiplications.
func scaleBySig(mag *big.Float, exp int32, prec uint, sign bool) *big.Float {
	if exp != 0 {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(absInt32(exp))), nil)
		pf := newFloat(prec).SetInt(p)
		if exp > 0 {
			mag.Mul(mag, pf)
		} else {
			mag.Quo(mag, pf)
		}
	}
	if sign {
		mag.Neg(mag)
	}
	return mag
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// fromBigFloat32 reassembles a big.Float result into a Triple32, rounding
// to precision significant digits via Normalize32. Renders the value as a
// decimal-exponent text first (the same decompose-then-Normalize shape
// internal/conv uses for binary floats) rather than reaching for
// big.Float's own rounding, so every width's rounding goes through one
// rounding authority.
func fromBigFloat32(f *big.Float, mode components.Rounding, precision int) (components.Triple32, components.Signal) {
	sign, digits, exp, special := bigFloatDigits(f, precision+2)
	if special != components.KindFinite || digits == "0" {
		if special != components.KindFinite {
			return components.Triple32{Kind: special, Sign: sign}, 0
		}
		return components.Zero32(sign), 0
	}
	sig, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return components.Infinity32(sign), components.SignalOverflow
	}
	return components.Normalize32(sign, sig, exp, mode, precision)
}

func fromBigFloat64(f *big.Float, mode components.Rounding, precision int) (components.Triple64, components.Signal) {
	sign, digits, exp, special := bigFloatDigits(f, precision+2)
	if special != components.KindFinite || digits == "0" {
		if special != components.KindFinite {
			return components.Triple64{Kind: special, Sign: sign}, 0
		}
		return components.Zero64(sign), 0
	}
	sig := digitsToU128(digits)
	return components.Normalize64(sign, sig, exp, mode, precision)
}

func fromBigFloat128(f *big.Float, mode components.Rounding, precision int) (components.Triple128, components.Signal) {
	sign, digits, exp, special := bigFloatDigits(f, precision+2)
	if special != components.KindFinite || digits == "0" {
		if special != components.KindFinite {
			return components.Triple128{Kind: special, Sign: sign}, 0
		}
		return components.Zero128(sign), 0
	}
	sig := digitsToU256(digits)
	return components.Normalize128(sign, sig, exp, mode, precision)
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

// bigFloatDigits extracts guardDigits significant decimal digits and a
// decimal exponent from f, via big.Float.Text's own scientific-notation
// formatter — the arbitrary-precision analogue of internal/conv's
// decomposeFloatDigits, needed here because the series evaluators work in
// binary-precision big.Float, not decimal triples.
func bigFloatDigits(f *big.Float, guardDigits int) (sign bool, digits string, exp int32, kind components.Kind) {
	if f.IsInf() {
		return f.Signbit(), "", 0, components.KindInfinity
	}
	if f.Sign() == 0 {
		return f.Signbit(), "0", 0, components.KindFinite
	}
	sign = f.Signbit()
	abs := new(big.Float).Abs(f)
	text := abs.Text('e', guardDigits)
	// text is "d.ddddde±dd"
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
	digits = string(b)
	exp = int32(e) - int32(fracLen)
	return sign, digits, exp, components.KindFinite
}
