package bid

import (
	"github.com/trippwill/decimal/internal/bigint"
	"github.com/trippwill/decimal/internal/components"
)

const (
	t128 = 110 // trailing significand field width
	w128 = 12  // exponent continuation field width
)

var pow10p128m1 = bigint.Pow10(components.P128 - 1) // 10^33

const hiTrailingMask = (uint64(1) << 46) - 1 // low 46 bits of Hi hold bits 109..64 of the trailing field

// Bits128 is the 128-bit BID bit pattern for a decimal128, stored as two
// little-endian 64-bit halves (Lo holds bits 63..0, Hi holds bits 127..64).
type Bits128 struct {
	Lo uint64
	Hi uint64
}

// Pack128 encodes a Triple128 into its 128-bit BID bit pattern.
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
		out.Hi |= tr.Significand.Hi & hiTrailingMask
		out.Lo = tr.Significand.Lo
		return out
	case components.KindSignalingNaN:
		out.Hi |= 0b11111 << 58
		out.Hi |= 1 << 57
		out.Hi |= tr.Significand.Hi & hiTrailingMask
		out.Lo = tr.Significand.Lo
		return out
	}

	biasedExp := uint64(int64(tr.Exponent) + components.Bias128)
	msd, trailing := tr.Significand.QuoRem(pow10p128m1)

	expTop2 := (biasedExp >> w128) & 0x3
	expCont := biasedExp & ((1 << w128) - 1)

	msdLo := msd.Lo
	var g uint64
	if msdLo <= 7 {
		g = (expTop2 << 3) | msdLo
	} else {
		g = (0b11 << 3) | ((expTop2 & 0x3) << 1) | (msdLo - 8)
	}

	out.Hi |= g << 58
	out.Hi |= expCont << 46
	out.Hi |= trailing.Hi & hiTrailingMask
	out.Lo = trailing.Lo
	return out
}

// Unpack128 decodes a 128-bit BID bit pattern into a Triple128.
func Unpack128(in Bits128) components.Triple128 {
	sign := in.Hi>>63 != 0
	g := (in.Hi >> 58) & 0x1F

	if g&0b11110 == 0b11110 {
		if g&1 == 0 {
			return components.Infinity128(sign)
		}
		payload := components.U128{Lo: in.Lo, Hi: in.Hi & hiTrailingMask}
		if in.Hi&(1<<57) != 0 {
			return components.Triple128{Kind: components.KindSignalingNaN, Sign: sign, Significand: payload}
		}
		return components.Triple128{Kind: components.KindQuietNaN, Sign: sign, Significand: payload}
	}

	trailing := components.U128{Lo: in.Lo, Hi: in.Hi & hiTrailingMask}
	expCont := (in.Hi >> 46) & ((1 << w128) - 1)

	var msd, expTop2 uint64
	if g>>3 == 0b11 {
		msd = 8 + (g & 0x1)
		expTop2 = (g >> 1) & 0x3
	} else {
		msd = g & 0x7
		expTop2 = (g >> 3) & 0x3
	}

	biasedExp := (expTop2 << w128) | expCont
	exp := int32(int64(biasedExp) - components.Bias128)
	coe := bigint.U128FromUint64(msd).Mul(pow10p128m1).Add(trailing)

	return components.Triple128{Kind: components.KindFinite, Sign: sign, Significand: coe, Exponent: exp}
}
