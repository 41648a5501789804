package bigint

import "math/bits"

// U256 is an unsigned 256-bit integer stored as four little-endian 64-bit
// limbs. 256 bits is sufficient for every intermediate product this package
// needs (two 34-digit significands multiply to at most 68 digits, well
// under 2^256's ~77 digits); the limb count is fixed at 4 rather than
// generalized to arbitrary width.
type U256 struct {
	W [4]uint64
}

func U256FromU128(v U128) U256 { return U256{W: [4]uint64{v.Lo, v.Hi, 0, 0}} }
func U256FromUint64(v uint64) U256 { return U256{W: [4]uint64{v, 0, 0, 0}} }

// Lo128 returns the low 128 bits, valid when the value is known to fit.
func (a U256) Lo128() U128 { return U128{Lo: a.W[0], Hi: a.W[1]} }

// FitsU128 reports whether a's high two limbs are zero.
func (a U256) FitsU128() bool { return a.W[2] == 0 && a.W[3] == 0 }

func (a U256) IsZero() bool {
	return a.W[0] == 0 && a.W[1] == 0 && a.W[2] == 0 && a.W[3] == 0
}

func (a U256) Cmp(b U256) int {
	for i := 3; i >= 0; i-- {
		if a.W[i] != b.W[i] {
			if a.W[i] < b.W[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (a U256) Add(b U256) U256 {
	var r U256
	var c uint64
	for i := 0; i < 4; i++ {
		r.W[i], c = bits.Add64(a.W[i], b.W[i], c)
	}
	return r
}

func (a U256) Sub(b U256) U256 {
	var r U256
	var c uint64
	for i := 0; i < 4; i++ {
		r.W[i], c = bits.Sub64(a.W[i], b.W[i], c)
	}
	return r
}

func (a U256) And(b U256) U256 {
	var r U256
	for i := 0; i < 4; i++ {
		r.W[i] = a.W[i] & b.W[i]
	}
	return r
}

func (a U256) Or(b U256) U256 {
	var r U256
	for i := 0; i < 4; i++ {
		r.W[i] = a.W[i] | b.W[i]
	}
	return r
}

func (a U256) Xor(b U256) U256 {
	var r U256
	for i := 0; i < 4; i++ {
		r.W[i] = a.W[i] ^ b.W[i]
	}
	return r
}

func (a U256) Not() U256 {
	var r U256
	for i := 0; i < 4; i++ {
		r.W[i] = ^a.W[i]
	}
	return r
}

func (a U256) Lsh(n uint) U256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		return U256{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var r U256
	for i := 3; i >= 0; i-- {
		srcIdx := i - int(limbShift)
		if srcIdx < 0 {
			continue
		}
		v := a.W[srcIdx] << bitShift
		if bitShift != 0 && srcIdx > 0 {
			v |= a.W[srcIdx-1] >> (64 - bitShift)
		}
		r.W[i] = v
	}
	return r
}

func (a U256) Rsh(n uint) U256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		return U256{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var r U256
	for i := 0; i < 4; i++ {
		srcIdx := i + int(limbShift)
		if srcIdx > 3 {
			continue
		}
		v := a.W[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx < 3 {
			v |= a.W[srcIdx+1] << (64 - bitShift)
		}
		r.W[i] = v
	}
	return r
}

func (a U256) LeadingZeros() uint {
	for i := 3; i >= 0; i-- {
		if a.W[i] != 0 {
			return uint((3-i)*64) + uint(bits.LeadingZeros64(a.W[i]))
		}
	}
	return 256
}

func (a U256) TrailingZeros() uint {
	for i := 0; i < 4; i++ {
		if a.W[i] != 0 {
			return uint(i*64) + uint(bits.TrailingZeros64(a.W[i]))
		}
	}
	return 256
}

// Mul returns a*b truncated modulo 2^256, via schoolbook long
// multiplication with full carry propagation.
func (a U256) Mul(b U256) U256 {
	var acc [8]uint64
	for i := 0; i < 4; i++ {
		if a.W[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.W[i], b.W[j])
			s1, c1 := bits.Add64(acc[i+j], lo, 0)
			s2, c2 := bits.Add64(s1, carry, 0)
			acc[i+j] = s2
			carry = hi + c1 + c2
		}
		k := i + 4
		for carry != 0 && k < 8 {
			s, c := bits.Add64(acc[k], carry, 0)
			acc[k] = s
			carry = c
			k++
		}
	}
	var r U256
	copy(r.W[:], acc[:4])
	return r
}

func (a U256) bit(i uint) bool {
	limb := i / 64
	return (a.W[limb]>>(i%64))&1 != 0
}

func (a U256) setBit(i uint) U256 {
	limb := i / 64
	a.W[limb] |= 1 << (i % 64)
	return a
}

// QuoRem performs unsigned division with remainder. Division by zero is a
// precondition violation; callers must check IsZero(divisor) first.
//
// The single-limb divisor case takes a fast path that walks limbs
// most-significant-first carrying the remainder. The general case uses a
// restoring shift-subtract long division rather than Knuth algorithm D,
// trading some speed for an implementation that is easy to verify
// digit-by-digit (see DESIGN.md).
func (a U256) QuoRem(b U256) (q, r U256) {
	if b.IsZero() {
		panic("bigint: division by zero")
	}
	if isSingleLimb(b) {
		return a.quoRemSmall(b.W[0])
	}
	return a.quoRemBinary(b)
}

func isSingleLimb(b U256) bool { return b.W[1] == 0 && b.W[2] == 0 && b.W[3] == 0 }

func (a U256) quoRemSmall(d uint64) (q U256, r U256) {
	var rem uint64
	for i := 3; i >= 0; i-- {
		hi, lo := rem, a.W[i]
		qd, rd := bits.Div64(hi, lo, d)
		q.W[i] = qd
		rem = rd
	}
	r.W[0] = rem
	return q, r
}

func (a U256) quoRemBinary(b U256) (q, r U256) {
	if a.Cmp(b) < 0 {
		return U256{}, a
	}
	rem := U256{}
	quot := U256{}
	for i := 255; i >= 0; i-- {
		rem = rem.Lsh(1)
		if a.bit(uint(i)) {
			rem.W[0] |= 1
		}
		if rem.Cmp(b) >= 0 {
			rem = rem.Sub(b)
			quot = quot.setBit(uint(i))
		}
	}
	return quot, rem
}

var pow10U256 = func() [78]U256 {
	var t [78]U256
	t[0] = U256FromUint64(1)
	ten := U256FromUint64(10)
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1].Mul(ten)
	}
	return t
}()

// Pow10_256 returns 10^n as a U256 for n in [0,77].
func Pow10_256(n int) U256 { return pow10U256[n] }

// DecimalDigits returns ceil(log10(x+1)) via repeated division; callers in
// this module only ever need it for intermediate products bounded well
// under 2^256, so a table-free loop is simpler than maintaining a ~78
// entry power-of-ten table and is not a hot path.
func (a U256) DecimalDigits() int {
	if a.IsZero() {
		return 1
	}
	n := 0
	ten := U256FromUint64(10)
	q := a
	for !q.IsZero() {
		q, _ = q.QuoRem(ten)
		n++
	}
	return n
}

func (a U256) String() string {
	if a.IsZero() {
		return "0"
	}
	var buf [80]byte
	i := len(buf)
	q := a
	ten := U256FromUint64(10)
	for !q.IsZero() {
		var r U256
		q, r = q.QuoRem(ten)
		i--
		buf[i] = byte('0' + r.W[0])
	}
	return string(buf[i:])
}
