// Package dpd implements the Densely Packed Decimal interchange encoding of
// IEEE 754-2008 §3.5 (Tables 3.3 and 3.4) for all three widths. DPD packs
// three decimal digits into a 10-bit declet; this file implements that
// packing in isolation, and dpd32.go/dpd64.go/dpd128.go assemble whole
// values from declets plus a leading digit carried in the combination
// field.
package dpd

// encodeDeclet packs three decimal digits (0-9 each), d1 most significant
// through d3 least significant, into a 10-bit declet per Table 3.4.
func encodeDeclet(d1, d2, d3 uint8) uint16 {
	b1 := bcdBits(d1)
	b2 := bcdBits(d2)
	b3 := bcdBits(d3)

	var out [10]uint8
	switch (b1[0] << 2) | (b2[0] << 1) | b3[0] {
	case 0b000:
		out[0], out[1], out[2] = b1[1], b1[2], b1[3]
		out[3], out[4], out[5] = b2[1], b2[2], b2[3]
		out[6] = 0
		out[7], out[8], out[9] = b3[1], b3[2], b3[3]
	case 0b001:
		out[0], out[1], out[2] = b1[1], b1[2], b1[3]
		out[3], out[4], out[5] = b2[1], b2[2], b2[3]
		out[6] = 1
		out[9] = b3[3]
	case 0b010:
		out[0], out[1], out[2] = b1[1], b1[2], b1[3]
		out[3], out[4], out[5] = b3[1], b3[2], b2[3]
		out[6] = 1
		out[7], out[8], out[9] = 0, 1, b3[3]
	case 0b011:
		out[0], out[1], out[2] = b1[1], b1[2], b1[3]
		out[3], out[4], out[5] = 1, 0, b2[3]
		out[6] = 1
		out[7], out[8], out[9] = 1, 1, b3[3]
	case 0b100:
		out[0], out[1], out[2] = b3[1], b3[2], b1[3]
		out[3], out[4], out[5] = b2[1], b2[2], b2[3]
		out[6] = 1
		out[7], out[8], out[9] = 1, 0, b3[3]
	case 0b101:
		out[0], out[1], out[2] = b2[1], b2[2], b1[3]
		out[3], out[4], out[5] = 0, 1, b2[3]
		out[6] = 1
		out[7], out[8], out[9] = 1, 1, b3[3]
	case 0b110:
		out[0], out[1], out[2] = b3[1], b3[2], b1[3]
		out[3], out[4], out[5] = 0, 0, b2[3]
		out[6] = 1
		out[7], out[8], out[9] = 1, 1, b3[3]
	case 0b111:
		out[0], out[1], out[2] = 0, 0, b1[3]
		out[3], out[4], out[5] = 1, 1, b2[3]
		out[6] = 1
		out[7], out[8], out[9] = 1, 1, b3[3]
	}

	var result uint16
	for i, bit := range out {
		result |= uint16(bit) << (9 - i)
	}
	return result
}

// decodeDeclet unpacks a 10-bit declet into three decimal digits (0-9
// each), d1 most significant through d3 least significant, per Table 3.3.
func decodeDeclet(bits uint16) (d1, d2, d3 uint8) {
	var b [10]uint8
	for i := range b {
		b[i] = uint8((bits >> (9 - i)) & 1)
	}

	switch {
	case b[6] == 0:
		d1 = b[0]<<2 | b[1]<<1 | b[2]
		d2 = b[3]<<2 | b[4]<<1 | b[5]
		d3 = b[7]<<2 | b[8]<<1 | b[9]
	case b[6] == 1 && b[7] == 0 && b[8] == 0:
		d1 = b[0]<<2 | b[1]<<1 | b[2]
		d2 = b[3]<<2 | b[4]<<1 | b[5]
		d3 = 8 + b[9]
	case b[6] == 1 && b[7] == 0 && b[8] == 1:
		d1 = b[0]<<2 | b[1]<<1 | b[2]
		d2 = 8 + b[5]
		d3 = b[3]<<2 | b[4]<<1 | b[9]
	case b[6] == 1 && b[7] == 1 && b[8] == 0:
		d1 = 8 + b[2]
		d2 = b[3]<<2 | b[4]<<1 | b[5]
		d3 = b[0]<<2 | b[1]<<1 | b[9]
	case b[6] == 1 && b[7] == 1 && b[8] == 1 && b[3] == 0 && b[4] == 0:
		d1 = 8 + b[2]
		d2 = 8 + b[5]
		d3 = b[0]<<2 | b[1]<<1 | b[9]
	case b[6] == 1 && b[7] == 1 && b[8] == 1 && b[3] == 0 && b[4] == 1:
		d1 = 8 + b[2]
		d2 = b[0]<<2 | b[1]<<1 | b[5]
		d3 = 8 + b[9]
	case b[6] == 1 && b[7] == 1 && b[8] == 1 && b[3] == 1 && b[4] == 0:
		d1 = b[0]<<2 | b[1]<<1 | b[2]
		d2 = 8 + b[5]
		d3 = 8 + b[9]
	default: // b6=b7=b8=b3=b4=1
		d1 = 8 + b[2]
		d2 = 8 + b[5]
		d3 = 8 + b[9]
	}
	return
}

// bcdBits returns a digit's four bits, most significant first.
func bcdBits(d uint8) [4]uint8 {
	return [4]uint8{(d >> 3) & 1, (d >> 2) & 1, (d >> 1) & 1, d & 1}
}
