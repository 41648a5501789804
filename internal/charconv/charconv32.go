package charconv

import (
	"strconv"

	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
)

// FromChars32 parses s into a Triple32. On success it returns the number of
// bytes consumed from the start of s; callers may pass a longer string and
// inspect the remainder themselves, matching from_chars' "pointer past last
// consumed byte" contract.
func FromChars32(s string, mode components.Rounding) (components.Triple32, int, Status) {
	if isHexLiteral(s) {
		_, f, n, status := scanHex(s)
		if status != StatusSuccess {
			return components.Triple32{}, 0, status
		}
		t, sig := conv.FromFloat64_32(f, mode, components.P32)
		if sig.Has(components.SignalOverflow) {
			return t, n, StatusResultOutOfRange
		}
		return t, n, StatusSuccess
	}

	p, status := scan(s)
	if status != StatusSuccess {
		return components.Triple32{}, 0, status
	}
	if p.kind != components.KindFinite {
		return components.Triple32{Kind: p.kind, Sign: p.sign}, p.consumed, StatusSuccess
	}

	// Digits past the first 18 only decide rounding: fold them into one
	// trailing sticky 1 so ParseUint never sees more than 19 digits.
	if len(p.digits) > 18 {
		tail := p.digits[18:]
		p.digits, p.exponent = p.digits[:18], p.exponent+int32(len(tail))
		for i := 0; i < len(tail); i++ {
			if tail[i] != '0' {
				p.digits, p.exponent = p.digits+"1", p.exponent-1
				break
			}
		}
	}
	sig, err := strconv.ParseUint(p.digits, 10, 64)
	if err != nil {
		return components.Triple32{}, p.consumed, StatusResultOutOfRange
	}
	t, rflags := components.Normalize32(p.sign, sig, p.exponent, mode, components.P32)
	if rflags.Has(components.SignalOverflow) {
		return t, p.consumed, StatusResultOutOfRange
	}
	return t, p.consumed, StatusSuccess
}

// ToChars32 renders t in the requested format. A negative precision trims
// trailing zeros, which gives the shortest string that round-trips back to
// t's value. A non-negative precision keeps all of t's significand digits,
// untrimmed and unrounded; it does not limit the digit count, and is only
// passed on as the float precision for FormatHex.
func ToChars32(t components.Triple32, f Format, precision int) string {
	switch t.Kind {
	case components.KindInfinity:
		return signWord(t.Sign, "Infinity")
	case components.KindQuietNaN:
		return signWord(t.Sign, "NaN")
	case components.KindSignalingNaN:
		return signWord(t.Sign, "sNaN")
	}

	digits := strconv.FormatUint(uint64(t.Significand), 10)
	exp := t.Exponent
	if precision < 0 {
		digits, exp = trimTrailingZeros(digits, exp)
	}

	if f == FormatHex {
		return renderHex(conv.ToFloat64_32(t), precision)
	}
	if f == FormatGeneral {
		return formatChoose(renderScientific(t.Sign, digits, exp), renderFixed(t.Sign, digits, exp))
	}
	if f == FormatScientific {
		return renderScientific(t.Sign, digits, exp)
	}
	return renderFixed(t.Sign, digits, exp)
}
