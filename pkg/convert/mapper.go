package convert

import (
	"github.com/pkg/errors"

	"img2array/pkg/bitmap"
	"img2array/pkg/palette"
)

// ErrLookup means a pixel could not be resolved against a palette that had
// already been validated. It is never expected in a correct pipeline.
var ErrLookup = errors.New("internal palette lookup failed")

// Map produces one output value per pixel of g, in scan order. With a nil
// palette the values are encoded colours, otherwise they are palette indices.
func Map(g *bitmap.Grid, f bitmap.Format, pal *palette.Palette) ([]uint32, error) {
	values := make([]uint32, g.Len())

	for i, c := range g.Pix {
		v := bitmap.Encode(c, f)
		if pal == nil {
			values[i] = v
			continue
		}

		idx, ok := pal.Index(v)
		if !ok {
			x, y := g.Pos(i)
			return nil, errors.Wrapf(ErrLookup, "colour %#x at (%d,%d)", v, x, y)
		}
		values[i] = uint32(idx)
	}

	return values, nil
}
