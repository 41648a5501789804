// Package components implements the canonical {sign, significand, exponent}
// triple used by the arithmetic kernel, and the rounding and normalization
// engine that keeps every triple within its width's range and precision.
package components

import "github.com/trippwill/decimal/internal/bigint"

// Kind discriminates the value states a triple can hold: finite (which
// includes both zero, normal and subnormal — those are properties of the
// significand/exponent pair, not separate Kinds), infinity, quiet NaN and
// signaling NaN.
type Kind uint8

const (
	KindFinite Kind = iota
	KindInfinity
	KindQuietNaN
	KindSignalingNaN
)

func (k Kind) IsNaN() bool { return k == KindQuietNaN || k == KindSignalingNaN }

// Signal is the IEEE exception bitset. Arithmetic OR-sets bits but never
// clears them; the caller clears explicitly.
type Signal uint8

const (
	SignalInvalidOperation Signal = 1 << iota
	SignalDivisionByZero
	SignalOverflow
	SignalUnderflow
	SignalInexact
)

func (s Signal) Has(f Signal) bool { return s&f != 0 }

func (s Signal) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		bit  Signal
		name string
	}{
		{SignalInvalidOperation, "invalid"},
		{SignalDivisionByZero, "divide-by-zero"},
		{SignalOverflow, "overflow"},
		{SignalUnderflow, "underflow"},
		{SignalInexact, "inexact"},
	}
	out := ""
	for _, n := range names {
		if s.Has(n.bit) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// U128 re-exports bigint.U128 so callers of this package rarely need to
// import internal/bigint directly.
type U128 = bigint.U128

// U256 re-exports bigint.U256 for the same reason.
type U256 = bigint.U256
