package components

import "github.com/trippwill/decimal/internal/bigint"

// Triple128 is the canonical {sign, significand, exponent} triple for the
// 128-bit width (p = 34 decimal digits).
type Triple128 struct {
	Kind        Kind
	Sign        bool
	Significand U128
	Exponent    int32
}

func Zero128(sign bool) Triple128     { return Triple128{Kind: KindFinite, Sign: sign} }
func Infinity128(sign bool) Triple128 { return Triple128{Kind: KindInfinity, Sign: sign} }
func QuietNaN128(sign bool) Triple128 { return Triple128{Kind: KindQuietNaN, Sign: sign} }
func SignalingNaN128(sign bool) Triple128 {
	return Triple128{Kind: KindSignalingNaN, Sign: sign}
}

func (t Triple128) IsZero() bool {
	return t.Kind == KindFinite && t.Significand.IsZero()
}

// Normalize128 reduces a widened (up to 77-digit) unrounded 128-bit-width
// significand, carried as a u256 so no intermediate product can overflow,
// to at most precision digits, applying mode's tie-break rule to the
// discarded digits, then re-canonicalizes and checks for overflow and
// underflow. precision must be in [1, P128].
func Normalize128(sign bool, sig U256, exp int32, mode Rounding, precision int) (Triple128, Signal) {
	if sig.IsZero() {
		e := exp
		if e < EMin128-P128 {
			e = EMin128 - P128
		}
		if e > EMax128 {
			e = EMax128
		}
		return Triple128{Kind: KindFinite, Sign: sign, Exponent: e}, 0
	}

	var flags Signal
	d := sig.DecimalDigits()
	e := exp

	if d > precision {
		var removed Signal
		sig, e, removed = roundOffDigitsU256(sig, d-precision, e, mode, sign)
		flags |= removed
		d = sig.DecimalDigits()
		if d > precision {
			ten := bigint.U256FromUint64(10)
			q, r := sig.QuoRem(ten)
			if !r.IsZero() {
				flags |= SignalInexact
			}
			sig = q
			e++
			d = sig.DecimalDigits()
		}
	}

	for d < precision && e > EMin128 {
		sig = sig.Mul(bigint.U256FromUint64(10))
		e--
		d++
	}

	if e+int32(d)-1 > EMax128 {
		flags |= SignalOverflow | SignalInexact
		return Infinity128(sign), flags
	}

	if e < EMin128 {
		var removed Signal
		sig, e, removed = roundOffDigitsU256(sig, int(EMin128-e), e, mode, sign)
		flags |= removed
		if sig.IsZero() {
			flags |= SignalUnderflow | SignalInexact
			e = EMin128
		}
	}

	maxU256 := bigint.U256FromU128(MaxCoefficient128)
	if sig.Cmp(maxU256) > 0 {
		sig = maxU256
		flags |= SignalOverflow | SignalInexact
	}

	return Triple128{Kind: KindFinite, Sign: sign, Significand: sig.Lo128(), Exponent: e}, flags
}

// roundOffDigitsU256 removes k (>=1) trailing decimal digits from sig
// (a U256), applying the rounding mode to the discarded tail.
func roundOffDigitsU256(sig U256, k int, exp int32, mode Rounding, sign bool) (U256, int32, Signal) {
	if k <= 0 {
		return sig, exp, 0
	}
	if k > 77 {
		return U256{}, exp + int32(k), SignalInexact
	}
	divisor := bigint.Pow10_256(k)
	q, r := sig.QuoRem(divisor)
	var flags Signal
	if !r.IsZero() {
		flags |= SignalInexact
		half := divisor.Rsh(1)
		cmp := r.Cmp(half)
		lo128 := q.Lo128()
		if roundDecision(mode, cmp, lo128.Lo%2 == 1, true, sign) {
			q = q.Add(bigint.U256FromUint64(1))
		}
	}
	return q, exp + int32(k), flags
}
