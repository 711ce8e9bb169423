// Package palette builds the ordered colour table that image data indexes
// into.
//
// A Palette is an ordered set of encoded colours: the first time a colour is
// seen during a row-major scan it is appended and given the next index, later
// occurrences are skipped. The same rule applies whether the colours come from
// the image itself or from a separate palette image, whose shape does not
// matter.
package palette

import (
	"img2array/pkg/bitmap"
)

type Palette struct {
	format bitmap.Format
	colors []uint32
	index  map[uint32]int
}

// Build scans g and returns the distinct encoded colours in first-seen order.
func Build(g *bitmap.Grid, f bitmap.Format) *Palette {
	p := &Palette{
		format: f,
		index:  make(map[uint32]int),
	}

	for _, c := range g.Pix {
		p.add(bitmap.Encode(c, f))
	}

	return p
}

func (p *Palette) add(c uint32) {
	if _, ok := p.index[c]; ok {
		return
	}
	p.index[c] = len(p.colors)
	p.colors = append(p.colors, c)
}

func (p *Palette) Format() bitmap.Format {
	return p.format
}

func (p *Palette) Len() int {
	return len(p.colors)
}

func (p *Palette) At(i int) uint32 {
	return p.colors[i]
}

// Colors returns a copy of the palette entries in index order.
func (p *Palette) Colors() []uint32 {
	return append([]uint32(nil), p.colors...)
}

// Index looks up the index assigned to an encoded colour.
func (p *Palette) Index(c uint32) (int, bool) {
	i, ok := p.index[c]
	return i, ok
}

// Fits reports a *CapacityError if the palette cannot be addressed with w-bit
// indices.
func (p *Palette) Fits(w Width) error {
	if uint64(len(p.colors)) > w.Capacity() {
		return &CapacityError{Size: len(p.colors), Width: w}
	}
	return nil
}

// Validate checks that every pixel of g encodes to a colour of p. The first
// miss in scan order is returned as a *MissingColorError.
func (p *Palette) Validate(g *bitmap.Grid) error {
	for i, c := range g.Pix {
		v := bitmap.Encode(c, p.format)
		if _, ok := p.index[v]; ok {
			continue
		}
		x, y := g.Pos(i)
		return &MissingColorError{
			X:      x,
			Y:      y,
			Color:  v,
			Source: bitmap.Encode(c, bitmap.RGB888),
			Format: p.format,
		}
	}
	return nil
}
