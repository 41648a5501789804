package components

import "github.com/trippwill/decimal/internal/bigint"

// Precision parameters for each width: digit count, exponent bias, and the
// minimum/maximum unbiased exponent.
const (
	P32   = 7
	Bias32  = 101
	EMin32  = -95
	EMax32  = 96

	P64   = 16
	Bias64  = 398
	EMin64  = -383
	EMax64  = 384

	P128  = 34
	Bias128 = 6176
	EMin128 = -6143
	EMax128 = 6144
)

// MaxCoefficient32 is 10^7 - 1, the largest 7-digit significand.
const MaxCoefficient32 uint32 = 9_999_999

// MaxCoefficient64 is 10^16 - 1, the largest 16-digit significand.
const MaxCoefficient64 uint64 = 9_999_999_999_999_999

// MaxCoefficient128 is 10^34 - 1, the largest 34-digit significand.
var MaxCoefficient128 = func() bigint.U128 {
	v := bigint.U128FromUint64(1)
	ten := bigint.U128FromUint64(10)
	for i := 0; i < 34; i++ {
		v = v.Mul(ten)
	}
	return v.Sub(bigint.U128FromUint64(1))
}()

var pow10U64 = func() [20]uint64 {
	var t [20]uint64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// Pow10_64 returns 10^n for n in [0,19]; panics outside that range.
func Pow10_64(n int) uint64 { return pow10U64[n] }

// DigitCount64 returns the number of decimal digits in x (1 for x == 0).
func DigitCount64(x uint64) int {
	switch {
	case x == 0:
		return 1
	case x < 10:
		return 1
	case x < 100:
		return 2
	case x < 1000:
		return 3
	case x < 10000:
		return 4
	case x < 100000:
		return 5
	case x < 1000000:
		return 6
	case x < 10000000:
		return 7
	case x < 100000000:
		return 8
	case x < 1000000000:
		return 9
	case x < 10000000000:
		return 10
	case x < 100000000000:
		return 11
	case x < 1000000000000:
		return 12
	case x < 10000000000000:
		return 13
	case x < 100000000000000:
		return 14
	case x < 1000000000000000:
		return 15
	case x < 10000000000000000:
		return 16
	case x < 100000000000000000:
		return 17
	case x < 1000000000000000000:
		return 18
	default:
		return 19
	}
}

func DigitCount32(x uint32) int { return DigitCount64(uint64(x)) }
