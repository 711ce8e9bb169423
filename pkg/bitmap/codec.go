package bitmap

import (
	"image/color"
)

// Encode packs the RGB channels of c into f. Alpha is ignored, so two pixels
// that only differ in alpha always encode to the same value.
func Encode(c color.NRGBA, f Format) uint32 {
	if f == RGB888 {
		return toRGB888(c.R, c.G, c.B)
	}
	return uint32(toRGB565(c.R, c.G, c.B))
}

// Decode is the inverse of Encode. The result is always opaque.
func Decode(v uint32, f Format) color.NRGBA {
	var r, g, b uint8
	if f == RGB888 {
		r, g, b = fromRGB888(v)
	} else {
		r, g, b = fromRGB565(uint16(v))
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// Model returns a color.Model that quantizes colors through f, which shows
// how an image will look once it has been encoded.
func Model(f Format) color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return Decode(Encode(n, f), f)
	})
}

func toRGB888(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func fromRGB888(v uint32) (r, g, b uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
