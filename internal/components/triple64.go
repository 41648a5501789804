package components

import "github.com/trippwill/decimal/internal/bigint"

// Triple64 is the canonical {sign, significand, exponent} triple for the
// 64-bit width (p = 16 decimal digits).
type Triple64 struct {
	Kind        Kind
	Sign        bool
	Significand uint64
	Exponent    int32
}

func Zero64(sign bool) Triple64       { return Triple64{Kind: KindFinite, Sign: sign} }
func Infinity64(sign bool) Triple64   { return Triple64{Kind: KindInfinity, Sign: sign} }
func QuietNaN64(sign bool) Triple64   { return Triple64{Kind: KindQuietNaN, Sign: sign} }
func SignalingNaN64(sign bool) Triple64 {
	return Triple64{Kind: KindSignalingNaN, Sign: sign}
}

func (t Triple64) IsZero() bool {
	return t.Kind == KindFinite && t.Significand == 0
}

// Normalize64 reduces a widened (up to 38-digit) unrounded 64-bit-width
// significand, carried as a u128 so no intermediate product can overflow,
// to at most precision digits, applying mode's tie-break rule to the
// discarded digits, then re-canonicalizes and checks for overflow and
// underflow. precision must be in [1, P64].
func Normalize64(sign bool, sig U128, exp int32, mode Rounding, precision int) (Triple64, Signal) {
	if sig.IsZero() {
		e := exp
		if e < EMin64-P64 {
			e = EMin64 - P64
		}
		if e > EMax64 {
			e = EMax64
		}
		return Triple64{Kind: KindFinite, Sign: sign, Exponent: e}, 0
	}

	var flags Signal
	d := sig.DecimalDigits()
	e := exp

	if d > precision {
		var removed Signal
		sig, e, removed = roundOffDigitsU128(sig, d-precision, e, mode, sign)
		flags |= removed
		d = sig.DecimalDigits()
		if d > precision {
			ten := bigint.U128FromUint64(10)
			q, r := sig.QuoRem(ten)
			if !r.IsZero() {
				flags |= SignalInexact
			}
			sig = q
			e++
			d = sig.DecimalDigits()
		}
	}

	for d < precision && e > EMin64 {
		sig = sig.Mul(bigint.U128FromUint64(10))
		e--
		d++
	}

	if e+int32(d)-1 > EMax64 {
		flags |= SignalOverflow | SignalInexact
		return Infinity64(sign), flags
	}

	if e < EMin64 {
		var removed Signal
		sig, e, removed = roundOffDigitsU128(sig, int(EMin64-e), e, mode, sign)
		flags |= removed
		if sig.IsZero() {
			flags |= SignalUnderflow | SignalInexact
			e = EMin64
		}
	}

	if sig.Cmp(bigint.U128FromUint64(MaxCoefficient64)) > 0 {
		sig = bigint.U128FromUint64(MaxCoefficient64)
		flags |= SignalOverflow | SignalInexact
	}

	return Triple64{Kind: KindFinite, Sign: sign, Significand: sig.Lo, Exponent: e}, flags
}

// roundOffDigitsU128 removes k (>=1) trailing decimal digits from sig
// (a U128), applying the rounding mode to the discarded tail.
func roundOffDigitsU128(sig U128, k int, exp int32, mode Rounding, sign bool) (U128, int32, Signal) {
	if k <= 0 {
		return sig, exp, 0
	}
	if k > 38 {
		return U128{}, exp + int32(k), SignalInexact
	}
	divisor := bigint.Pow10(k)
	q, r := sig.QuoRem(divisor)
	var flags Signal
	if !r.IsZero() {
		flags |= SignalInexact
		half := divisor.Rsh(1) // divisor is a power of ten >= 10, always even
		cmp := r.Cmp(half)
		if roundDecision(mode, cmp, q.Lo%2 == 1, true, sign) {
			q = q.Add(bigint.U128FromUint64(1))
		}
	}
	return q, exp + int32(k), flags
}
