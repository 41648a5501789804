// Package decimal implements IEEE 754-2008 decimal floating-point arithmetic
// at three widths (32, 64 and 128 bits), each available in two forms: a
// cohort-preserving IEEE form (Decimal32/64/128, bit-exact, encodable via
// internal/bid and internal/dpd) and a canonicalized fast form
// (Decimal32Fast/64Fast/128Fast, built directly on internal/components'
// triples) for callers who don't need cohort fidelity and want to skip the
// pack/unpack round trip on every operation.
package decimal

import (
	"github.com/trippwill/decimal/internal/components"
)

// Rounding selects the tie-break rule a rounding operation applies when a
// result needs more digits than its target precision allows.
type Rounding = components.Rounding

const (
	RoundTiesToEven    = components.RoundTiesToEven
	RoundTiesToAway    = components.RoundTiesToAway
	RoundTowardZero    = components.RoundTowardZero
	RoundTowardPositive = components.RoundTowardPositive
	RoundTowardNegative = components.RoundTowardNegative
)

// Signal is the IEEE exception bitset a Context accumulates as operations
// run. Bits are only ever set, never cleared, except by an explicit
// ClearSignals call.
type Signal = components.Signal

const (
	SignalInvalidOperation = components.SignalInvalidOperation
	SignalDivisionByZero   = components.SignalDivisionByZero
	SignalOverflow         = components.SignalOverflow
	SignalUnderflow        = components.SignalUnderflow
	SignalInexact          = components.SignalInexact
)
