package bitmap

import (
	"image"
	"image/color"
)

func NewImage(w, h int, colors []uint32, f Format) *Image {
	return &Image{
		colors: colors,
		stride: w,
		bounds: image.Rect(0, 0, w, h),
		format: f,
	}
}

// Image is a read-only view over encoded colors. It implements the
// image.Image interface, decoding each value on access.
type Image struct {
	colors []uint32
	stride int
	bounds image.Rectangle
	format Format
}

// Bounds implements the image.Image interface.
func (d *Image) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image interface.
func (d *Image) ColorModel() color.Model {
	return Model(d.format)
}

// At implements the image.Image interface.
func (d *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(d.bounds) {
		return color.NRGBA{}
	}
	return Decode(d.colors[y*d.stride+x], d.format)
}
