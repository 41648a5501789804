package dpd

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

const w128 = 12 // exponent continuation field width, matches internal/bid

var pow10p128m1 = bigint.Pow10(components.P128 - 1) // 10^33

// Bits128 is the 128-bit DPD bit pattern for a decimal128, stored as two
// little-endian 64-bit halves (Lo holds bits 63..0, Hi holds bits 127..64).
type Bits128 struct {
	Lo uint64
	Hi uint64
}

func shiftLeft128(value uint64, shift int) Bits128 {
	switch {
	case shift <= 0:
		return Bits128{Lo: value}
	case shift >= 128:
		return Bits128{}
	case shift < 64:
		lo := value << uint(shift)
		hi := value >> uint(64-shift)
		return Bits128{Lo: lo, Hi: hi}
	default:
		return Bits128{Hi: value << uint(shift-64)}
	}
}

func (b *Bits128) orShiftLeft(value uint64, shift int) {
	s := shiftLeft128(value, shift)
	b.Lo |= s.Lo
	b.Hi |= s.Hi
}

func (b Bits128) bitsAt(shift, width int) uint64 {
	var shifted Bits128
	switch {
	case shift <= 0:
		shifted = b
	case shift >= 128:
		shifted = Bits128{}
	case shift < 64:
		shifted = Bits128{
			Lo: (b.Lo >> uint(shift)) | (b.Hi << uint(64-shift)),
			Hi: b.Hi >> uint(shift),
		}
	default:
		shifted = Bits128{Lo: b.Hi >> uint(shift-64)}
	}
	return shifted.Lo & ((1 << uint(width)) - 1)
}

// Pack128 encodes a Triple128 into its 128-bit DPD bit pattern.
func Pack128(tr components.Triple128) Bits128 {
	var out Bits128
	if tr.Sign {
		out.Hi |= 1 << 63
	}

	switch tr.Kind {
	case components.KindInfinity:
		out.Hi |= 0b11110 << 58
		return out
	case components.KindQuietNaN:
		out.Hi |= 0b11111 << 58
		return out
	case components.KindSignalingNaN:
		out.Hi |= 0b11111 << 58
		out.Hi |= 1 << 57
		return out
	}

	biasedExp := uint64(int64(tr.Exponent) + components.Bias128)
	msd, trailing := tr.Significand.QuoRem(pow10p128m1)

	var d [33]uint8
	ten := bigint.U128FromUint64(10)
	rest := trailing
	for i := 32; i >= 0; i-- {
		var r bigint.U128
		rest, r = rest.QuoRem(ten)
		d[i] = uint8(r.Lo)
	}

	expTop2 := (biasedExp >> w128) & 0x3
	expCont := biasedExp & ((1 << w128) - 1)

	d0 := msd.Lo
	var g uint64
	if d0 <= 7 {
		g = (expTop2 << 3) | d0
	} else {
		g = (0b11 << 3) | ((expTop2 & 0x3) << 1) | (d0 - 8)
	}

	out.Hi |= g << 58
	out.Hi |= expCont << 46

	offset := 10
	for i := 0; i < 33; i += 3 {
		declet := encodeDeclet(d[i], d[i+1], d[i+2])
		out.orShiftLeft(uint64(declet), 10*offset)
		offset--
	}
	return out
}

// Unpack128 decodes a 128-bit DPD bit pattern into a Triple128.
func Unpack128(in Bits128) components.Triple128 {
	sign := in.Hi>>63 != 0
	g := (in.Hi >> 58) & 0x1F

	if g&0b11110 == 0b11110 {
		if g&1 == 0 {
			return components.Infinity128(sign)
		}
		if in.Hi&(1<<57) != 0 {
			return components.Triple128{Kind: components.KindSignalingNaN, Sign: sign}
		}
		return components.Triple128{Kind: components.KindQuietNaN, Sign: sign}
	}

	expCont := (in.Hi >> 46) & ((1 << w128) - 1)

	var d0, expTop2 uint64
	if g>>3 == 0b11 {
		d0 = 8 + (g & 0x1)
		expTop2 = (g >> 1) & 0x3
	} else {
		d0 = g & 0x7
		expTop2 = (g >> 3) & 0x3
	}

	biasedExp := (expTop2 << w128) | expCont
	exp := int32(int64(biasedExp) - components.Bias128)

	var d [33]uint8
	offset := 10
	for i := 0; i < 33; i += 3 {
		declet := uint16(in.bitsAt(10*offset, 10))
		d[i], d[i+1], d[i+2] = decodeDeclet(declet)
		offset--
	}

	coe := bigint.U128FromUint64(d0)
	for i := 0; i < 33; i++ {
		coe = coe.Mul(bigint.U128FromUint64(10)).Add(bigint.U128FromUint64(uint64(d[i])))
	}

	return components.Triple128{Kind: components.KindFinite, Sign: sign, Significand: coe, Exponent: exp}
}
