package charconv

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
	"github.com/trippwill/decimal/internal/conv"
)

// FromChars128 parses s into a Triple128; see FromChars32 for the contract.
func FromChars128(s string, mode components.Rounding) (components.Triple128, int, Status) {
	if isHexLiteral(s) {
		_, f, n, status := scanHex(s)
		if status != StatusSuccess {
			return components.Triple128{}, 0, status
		}
		t, sig := conv.FromFloat64_128(f, mode, components.P128)
		if sig.Has(components.SignalOverflow) {
			return t, n, StatusResultOutOfRange
		}
		return t, n, StatusSuccess
	}

	p, status := scan(s)
	if status != StatusSuccess {
		return components.Triple128{}, 0, status
	}
	if p.kind != components.KindFinite {
		return components.Triple128{Kind: p.kind, Sign: p.sign}, p.consumed, StatusSuccess
	}

	sig, ok := parseU256Digits(p.digits)
	if !ok {
		return components.Triple128{}, p.consumed, StatusResultOutOfRange
	}
	t, rflags := components.Normalize128(p.sign, sig, p.exponent, mode, components.P128)
	if rflags.Has(components.SignalOverflow) {
		return t, p.consumed, StatusResultOutOfRange
	}
	return t, p.consumed, StatusSuccess
}

// ToChars128 renders t; see ToChars32 for the contract.
func ToChars128(t components.Triple128, f Format, precision int) string {
	switch t.Kind {
	case components.KindInfinity:
		return signWord(t.Sign, "Infinity")
	case components.KindQuietNaN:
		return signWord(t.Sign, "NaN")
	case components.KindSignalingNaN:
		return signWord(t.Sign, "sNaN")
	}

	digits := t.Significand.String()
	exp := t.Exponent
	if precision < 0 {
		digits, exp = trimTrailingZeros(digits, exp)
	}

	if f == FormatHex {
		return renderHex(conv.ToFloat64_128(t), precision)
	}
	if f == FormatGeneral {
		return formatChoose(renderScientific(t.Sign, digits, exp), renderFixed(t.Sign, digits, exp))
	}
	if f == FormatScientific {
		return renderScientific(t.Sign, digits, exp)
	}
	return renderFixed(t.Sign, digits, exp)
}

// parseU256Digits parses a plain decimal digit string into a U256, reporting
// false if it overflows 256 bits. 76 nines is always representable
// (10^76-1 < 2^256-1), matching parseU128Digits' margin-of-safety approach.
func parseU256Digits(digits string) (bigint.U256, bool) {
	if len(digits) > 76 {
		return bigint.U256{}, false
	}
	v := bigint.U256{}
	ten := bigint.U256FromUint64(10)
	for i := 0; i < len(digits); i++ {
		v = v.Mul(ten).Add(bigint.U256FromUint64(uint64(digits[i] - '0')))
	}
	return v, true
}
