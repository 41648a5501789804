package charconv

import (
	"strconv"

	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
)

// FromChars64 parses s into a Triple64; see FromChars32 for the contract.
func FromChars64(s string, mode components.Rounding) (components.Triple64, int, Status) {
	if isHexLiteral(s) {
		_, f, n, status := scanHex(s)
		if status != StatusSuccess {
			return components.Triple64{}, 0, status
		}
		t, sig := conv.FromFloat64_64(f, mode, components.P64)
		if sig.Has(components.SignalOverflow) {
			return t, n, StatusResultOutOfRange
		}
		return t, n, StatusSuccess
	}

	p, status := scan(s)
	if status != StatusSuccess {
		return components.Triple64{}, 0, status
	}
	if p.kind != components.KindFinite {
		return components.Triple64{Kind: p.kind, Sign: p.sign}, p.consumed, StatusSuccess
	}

	// Digits past the first 36 only decide rounding: fold them into one
	// trailing sticky 1 so parseU128Digits never sees more than 37 digits.
	if len(p.digits) > 36 {
		tail := p.digits[36:]
		p.digits, p.exponent = p.digits[:36], p.exponent+int32(len(tail))
		for i := 0; i < len(tail); i++ {
			if tail[i] != '0' {
				p.digits, p.exponent = p.digits+"1", p.exponent-1
				break
			}
		}
	}
	sig, ok := parseU128Digits(p.digits)
	if !ok {
		return components.Triple64{}, p.consumed, StatusResultOutOfRange
	}
	t, rflags := components.Normalize64(p.sign, sig, p.exponent, mode, components.P64)
	if rflags.Has(components.SignalOverflow) {
		return t, p.consumed, StatusResultOutOfRange
	}
	return t, p.consumed, StatusSuccess
}

// ToChars64 renders t; see ToChars32 for the contract.
func ToChars64(t components.Triple64, f Format, precision int) string {
	switch t.Kind {
	case components.KindInfinity:
		return signWord(t.Sign, "Infinity")
	case components.KindQuietNaN:
		return signWord(t.Sign, "NaN")
	case components.KindSignalingNaN:
		return signWord(t.Sign, "sNaN")
	}

	digits := strconv.FormatUint(t.Significand, 10)
	exp := t.Exponent
	if precision < 0 {
		digits, exp = trimTrailingZeros(digits, exp)
	}

	if f == FormatHex {
		return renderHex(conv.ToFloat64_64(t), precision)
	}
	if f == FormatGeneral {
		return formatChoose(renderScientific(t.Sign, digits, exp), renderFixed(t.Sign, digits, exp))
	}
	if f == FormatScientific {
		return renderScientific(t.Sign, digits, exp)
	}
	return renderFixed(t.Sign, digits, exp)
}

// parseU128Digits parses a plain decimal digit string into a U128,
// reporting false for any string longer than 38 digits. 38 nines is always
// representable (10^38-1 < 2^128-1), so this threshold never wraps silently.
// FromChars64 folds longer inputs down to at most 37 digits before calling it.
func parseU128Digits(digits string) (bigint.U128, bool) {
	if len(digits) > 38 {
		return bigint.U128{}, false
	}
	v := bigint.U128{}
	ten := bigint.U128FromUint64(10)
	for i := 0; i < len(digits); i++ {
		v = v.Mul(ten).Add(bigint.U128FromUint64(uint64(digits[i] - '0')))
	}
	return v, true
}
