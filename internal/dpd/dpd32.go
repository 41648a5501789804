package dpd

import "github.com/trippwill/decimal/internal/components"

const w32 = 6 // exponent continuation field width, matches internal/bid

// Pack32 encodes a Triple32 into its 32-bit DPD bit pattern. Non-finite
// values share the same sign/combination layout as BID.
func Pack32(tr components.Triple32) uint32 {
	var bits uint32
	if tr.Sign {
		bits |= 1 << 31
	}

	switch tr.Kind {
	case components.KindInfinity:
		bits |= 0b11110 << 26
		return bits
	case components.KindQuietNaN:
		bits |= 0b11111 << 26
		return bits
	case components.KindSignalingNaN:
		bits |= 0b11111 << 26
		bits |= 1 << 25
		return bits
	}

	biasedExp := uint32(int32(tr.Exponent) + components.Bias32)
	var d [7]uint8
	rest := tr.Significand
	for i := 6; i >= 0; i-- {
		d[i] = uint8(rest % 10)
		rest /= 10
	}

	expTop2 := (biasedExp >> w32) & 0x3
	expCont := biasedExp & ((1 << w32) - 1)

	var g uint32
	if d[0] <= 7 {
		g = (expTop2 << 3) | uint32(d[0])
	} else {
		g = (0b11 << 3) | ((expTop2 & 0x3) << 1) | uint32(d[0]-8)
	}

	declet1 := encodeDeclet(d[1], d[2], d[3])
	declet2 := encodeDeclet(d[4], d[5], d[6])

	bits |= g << 26
	bits |= expCont << 20
	bits |= uint32(declet1) << 10
	bits |= uint32(declet2)
	return bits
}

// Unpack32 decodes a 32-bit DPD bit pattern into a Triple32.
func Unpack32(bits uint32) components.Triple32 {
	sign := bits>>31 != 0
	g := (bits >> 26) & 0x1F

	if g&0b11110 == 0b11110 {
		if g&1 == 0 {
			return components.Infinity32(sign)
		}
		if bits&(1<<25) != 0 {
			return components.Triple32{Kind: components.KindSignalingNaN, Sign: sign}
		}
		return components.Triple32{Kind: components.KindQuietNaN, Sign: sign}
	}

	expCont := (bits >> 20) & ((1 << w32) - 1)

	var d0 uint32
	var expTop2 uint32
	if g>>3 == 0b11 {
		d0 = 8 + (g & 0x1)
		expTop2 = (g >> 1) & 0x3
	} else {
		d0 = g & 0x7
		expTop2 = (g >> 3) & 0x3
	}

	biasedExp := (expTop2 << w32) | expCont
	exp := int32(biasedExp) - components.Bias32

	declet1 := uint16((bits >> 10) & 0x3FF)
	declet2 := uint16(bits & 0x3FF)
	d1, d2, d3 := decodeDeclet(declet1)
	d4, d5, d6 := decodeDeclet(declet2)

	coe := d0*1_000_000 + uint32(d1)*100_000 + uint32(d2)*10_000 + uint32(d3)*1_000 +
		uint32(d4)*100 + uint32(d5)*10 + uint32(d6)

	return components.Triple32{Kind: components.KindFinite, Sign: sign, Significand: coe, Exponent: exp}
}
