package dpd

import "github.com/trippwill/decimal/internal/components"

const w64 = 8 // exponent continuation field width, matches internal/bid

// Pack64 encodes a Triple64 into its 64-bit DPD bit pattern.
func Pack64(tr components.Triple64) uint64 {
	var bits uint64
	if tr.Sign {
		bits |= 1 << 63
	}

	switch tr.Kind {
	case components.KindInfinity:
		bits |= 0b11110 << 58
		return bits
	case components.KindQuietNaN:
		bits |= 0b11111 << 58
		return bits
	case components.KindSignalingNaN:
		bits |= 0b11111 << 58
		bits |= 1 << 57
		return bits
	}

	biasedExp := uint64(int64(tr.Exponent) + components.Bias64)
	var d [16]uint8
	rest := tr.Significand
	for i := 15; i >= 0; i-- {
		d[i] = uint8(rest % 10)
		rest /= 10
	}

	expTop2 := (biasedExp >> w64) & 0x3
	expCont := biasedExp & ((1 << w64) - 1)

	var g uint64
	if d[0] <= 7 {
		g = (expTop2 << 3) | uint64(d[0])
	} else {
		g = (0b11 << 3) | ((expTop2 & 0x3) << 1) | uint64(d[0]-8)
	}

	bits |= g << 58
	bits |= expCont << 50

	offset := 4
	for i := 1; i < 16; i += 3 {
		declet := encodeDeclet(d[i], d[i+1], d[i+2])
		bits |= uint64(declet) << (10 * offset)
		offset--
	}
	return bits
}

// Unpack64 decodes a 64-bit DPD bit pattern into a Triple64.
func Unpack64(bits uint64) components.Triple64 {
	sign := bits>>63 != 0
	g := (bits >> 58) & 0x1F

	if g&0b11110 == 0b11110 {
		if g&1 == 0 {
			return components.Infinity64(sign)
		}
		if bits&(1<<57) != 0 {
			return components.Triple64{Kind: components.KindSignalingNaN, Sign: sign}
		}
		return components.Triple64{Kind: components.KindQuietNaN, Sign: sign}
	}

	expCont := (bits >> 50) & ((1 << w64) - 1)

	var d0 uint64
	var expTop2 uint64
	if g>>3 == 0b11 {
		d0 = 8 + (g & 0x1)
		expTop2 = (g >> 1) & 0x3
	} else {
		d0 = g & 0x7
		expTop2 = (g >> 3) & 0x3
	}

	biasedExp := (expTop2 << w64) | expCont
	exp := int32(int64(biasedExp) - components.Bias64)

	var d [16]uint8
	d[0] = uint8(d0)
	sigBits := bits
	for i := 15; i > 0; i -= 3 {
		declet := uint16(sigBits & 0x3FF)
		sigBits >>= 10
		d[i-2], d[i-1], d[i] = decodeDeclet(declet)
	}

	var coe uint64
	pow := uint64(1)
	for i := 15; i >= 0; i-- {
		coe += uint64(d[i]) * pow
		pow *= 10
	}

	return components.Triple64{Kind: components.KindFinite, Sign: sign, Significand: coe, Exponent: exp}
}
