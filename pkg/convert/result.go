package convert

import (
	"img2array/pkg/bitmap"
	"img2array/pkg/palette"
)

// Result is the outcome of one conversion. Palette is nil when the values
// are encoded colours rather than indices.
type Result struct {
	Width      int
	Height     int
	Format     bitmap.Format
	IndexWidth palette.Width
	Palette    *palette.Palette
	Values     []uint32
}

func (r *Result) Indexed() bool {
	return r.Palette != nil
}

// Colors resolves every value to its encoded colour.
func (r *Result) Colors() []uint32 {
	if r.Palette == nil {
		return append([]uint32(nil), r.Values...)
	}

	colors := make([]uint32, len(r.Values))
	for i, v := range r.Values {
		colors[i] = r.Palette.At(int(v))
	}
	return colors
}

// Image returns a view of the result as it will look on the target.
func (r *Result) Image() *bitmap.Image {
	return bitmap.NewImage(r.Width, r.Height, r.Colors(), r.Format)
}
