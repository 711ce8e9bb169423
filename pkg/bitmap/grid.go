package bitmap

import (
	"image"
	"image/color"
)

// Grid holds 8-bit non-premultiplied pixels in row-major order.
type Grid struct {
	Width  int
	Height int
	Pix    []color.NRGBA
}

func NewGrid(w, h int) *Grid {
	return &Grid{
		Width:  w,
		Height: h,
		Pix:    make([]color.NRGBA, w*h),
	}
}

// FromImage copies src into a Grid, top row first and left to right within a
// row. The top-left corner of src becomes (0, 0).
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Pix[i] = toNRGBA(src.At(x, y))
			i++
		}
	}

	return g
}

// toNRGBA keeps the straight RGB of non-premultiplied colors, even when they
// are fully transparent. Anything else goes through color.NRGBAModel.
func toNRGBA(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return color.NRGBA{
			R: uint8(c.R >> 8),
			G: uint8(c.G >> 8),
			B: uint8(c.B >> 8),
			A: uint8(c.A >> 8),
		}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (g *Grid) Len() int {
	return len(g.Pix)
}

// Pos converts a scan index back to a pixel position.
func (g *Grid) Pos(i int) (x, y int) {
	if g.Width == 0 {
		return 0, 0
	}
	return i % g.Width, i / g.Width
}
