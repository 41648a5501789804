package components

import "fmt"

// Rounding enumerates the five IEEE 754-2008 rounding modes.
type Rounding uint8

const (
	// RoundTiesToEven is the default rounding mode: ties round to the
	// value whose final digit is even.
	RoundTiesToEven Rounding = iota
	// RoundTiesToAway rounds ties away from zero.
	RoundTiesToAway
	// RoundTowardZero truncates.
	RoundTowardZero
	// RoundTowardPositive rounds toward +infinity (ceiling).
	RoundTowardPositive
	// RoundTowardNegative rounds toward -infinity (floor).
	RoundTowardNegative
)

const DefaultRounding = RoundTiesToEven

func (r Rounding) String() string {
	switch r {
	case RoundTiesToEven:
		return "RoundTiesToEven"
	case RoundTiesToAway:
		return "RoundTiesToAway"
	case RoundTowardZero:
		return "RoundTowardZero"
	case RoundTowardPositive:
		return "RoundTowardPositive"
	case RoundTowardNegative:
		return "RoundTowardNegative"
	default:
		return fmt.Sprintf("Rounding(%d)", uint8(r))
	}
}

// roundDecision reports whether the digit(s) being discarded should cause
// the retained quotient to be incremented, given the remainder's relation
// to half of the divisor and whether the quotient is currently odd (needed
// only for ties-to-even).
//
// cmpHalf is the result of comparing 2*remainder to the divisor: <0 means
// remainder is less than half, 0 means exactly half, >0 means more than
// half.
func roundDecision(mode Rounding, cmpHalf int, quotientOdd bool, remainderNonZero bool, sign bool) bool {
	switch mode {
	case RoundTiesToEven:
		if cmpHalf > 0 {
			return true
		}
		if cmpHalf == 0 {
			return quotientOdd
		}
		return false
	case RoundTiesToAway:
		return cmpHalf >= 0
	case RoundTowardZero:
		return false
	case RoundTowardPositive:
		return !sign && remainderNonZero
	case RoundTowardNegative:
		return sign && remainderNonZero
	default:
		return false
	}
}
