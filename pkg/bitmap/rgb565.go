package bitmap

// RGB 565 packs each pixel into two bytes, with 5 bits for red, 6 bits for
// green and 5 bits for blue. There is no alpha channel.
// This shows the layout of a value:
//
//    bit 76543210  76543210
//        RRRRRGGG  GGGBBBBB
//       high byte  low byte

// toRGB565 keeps the highest 5 or 6 bits of each 8-bit channel. The low bits
// are dropped, not rounded.
func toRGB565(r, g, b uint8) uint16 {
	// RRRRRGGGGGGBBBBB
	return uint16(r&0xF8)<<8 |
		uint16(g&0xFC)<<3 |
		uint16(b>>3)
}

// fromRGB565 widens each channel back to 8 bits.
func fromRGB565(c uint16) (r, g, b uint8) {
	// To convert a channel from 5 or 6 bits back to 8 bits, the short bit
	// pattern is duplicated to fill all 8 bits. For red:
	//     RRRRR000 shifted << 3
	//     00000RRR shifted >> 2
	//
	// These patterns map the minimum (all bits 0) and maximum (all bits 1)
	// 5 and 6 bit channel values to the minimum and maximum 8 bit values.
	rBits := uint8(c >> 11 & 0x1F)
	gBits := uint8(c >> 5 & 0x3F)
	bBits := uint8(c & 0x1F)
	r = rBits<<3 | rBits>>2
	g = gBits<<2 | gBits>>4
	b = bBits<<3 | bBits>>2
	return
}
