package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2array/pkg/bitmap"
)

var (
	black = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	red   = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	green = color.NRGBA{0x00, 0xFF, 0x00, 0xFF}
	blue  = color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
)

func grid(w, h int, pix ...color.NRGBA) *bitmap.Grid {
	g := bitmap.NewGrid(w, h)
	copy(g.Pix, pix)
	return g
}

func distinct(n int) *bitmap.Grid {
	g := bitmap.NewGrid(n, 1)
	for i := range g.Pix {
		g.Pix[i] = color.NRGBA{uint8(i >> 8), uint8(i), uint8(i >> 16), 0xFF}
	}
	return g
}

func TestBuildFirstSeenOrder(t *testing.T) {
	g := grid(3, 2,
		red, red, black,
		blue, black, red,
	)

	p := Build(g, bitmap.RGB565)
	assert.Equal(t, []uint32{0xF800, 0x0000, 0x001F}, p.Colors())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, bitmap.RGB565, p.Format())

	i, ok := p.Index(0x001F)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = p.Index(0x07E0)
	assert.False(t, ok)
}

func TestBuildDeterministic(t *testing.T) {
	g := grid(4, 1, blue, green, blue, red)
	assert.Equal(t, Build(g, bitmap.RGB888).Colors(), Build(g, bitmap.RGB888).Colors())
}

func TestBuildNoDuplicates(t *testing.T) {
	g := distinct(300)
	for i := 0; i < len(g.Pix); i += 2 {
		g.Pix[i] = black
	}

	p := Build(g, bitmap.RGB888)
	seen := make(map[uint32]bool)
	for i, c := range p.Colors() {
		assert.False(t, seen[c], "duplicate %x", c)
		seen[c] = true
		idx, ok := p.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestBuildMergesAfterQuantization(t *testing.T) {
	// Both collapse to the same RGB565 value.
	g := grid(2, 1,
		color.NRGBA{0xF8, 0x00, 0x00, 0xFF},
		color.NRGBA{0xFF, 0x03, 0x07, 0xFF},
	)

	assert.Equal(t, 1, Build(g, bitmap.RGB565).Len())
	assert.Equal(t, 2, Build(g, bitmap.RGB888).Len())
}

func TestBuildIgnoresAlpha(t *testing.T) {
	g := grid(2, 1, red, color.NRGBA{0xFF, 0x00, 0x00, 0x00})
	assert.Equal(t, 1, Build(g, bitmap.RGB565).Len())
}

func TestBuildSuppliedShapes(t *testing.T) {
	row := grid(3, 1, red, green, blue)
	col := grid(1, 3, red, green, blue)
	square := grid(2, 2, red, green, blue, red)

	want := Build(row, bitmap.RGB888).Colors()
	assert.Equal(t, want, Build(col, bitmap.RGB888).Colors())
	assert.Equal(t, want, Build(square, bitmap.RGB888).Colors())
}

func TestFits(t *testing.T) {
	require.NoError(t, Build(distinct(256), bitmap.RGB888).Fits(Width8))

	err := Build(distinct(257), bitmap.RGB888).Fits(Width8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)

	var ce *CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 257, ce.Size)
	assert.Equal(t, Width8, ce.Width)
	assert.Contains(t, err.Error(), "palette size of 8 bits")

	assert.NoError(t, Build(distinct(257), bitmap.RGB888).Fits(Width16))
	assert.NoError(t, Build(distinct(257), bitmap.RGB888).Fits(Width32))
}

func TestFits16(t *testing.T) {
	full := Build(distinct(1<<16), bitmap.RGB888)
	require.Equal(t, 1<<16, full.Len())
	require.NoError(t, full.Fits(Width16))

	over := Build(distinct(1<<16+1), bitmap.RGB888)
	require.Equal(t, 1<<16+1, over.Len())

	err := over.Fits(Width16)
	assert.ErrorIs(t, err, ErrCapacity)

	var ce *CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1<<16+1, ce.Size)
	assert.Equal(t, Width16, ce.Width)
	assert.NoError(t, over.Fits(Width32))
}

func TestValidate(t *testing.T) {
	pal := Build(grid(2, 1, black, red), bitmap.RGB565)

	assert.NoError(t, pal.Validate(grid(2, 2, red, red, black, red)))

	err := pal.Validate(grid(2, 2, red, black, red, blue))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColor)

	var me *MissingColorError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.X)
	assert.Equal(t, 1, me.Y)
	assert.Equal(t, uint32(0x001F), me.Color)
	assert.Equal(t, uint32(0x0000FF), me.Source)
	assert.Equal(t, "colour 0x001F (0x0000FF) at (1,1) isn't present in the palette", err.Error())
}

func TestValidateReportsFirstMiss(t *testing.T) {
	pal := Build(grid(1, 1, black), bitmap.RGB888)

	err := pal.Validate(grid(3, 1, black, green, blue))
	var me *MissingColorError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, uint32(0x00FF00), me.Color)
	assert.Equal(t, "colour 0x00FF00 at (1,0) isn't present in the palette", err.Error())
}

func TestParseWidth(t *testing.T) {
	for in, want := range map[string]Width{"8": Width8, "16": Width16, "32": Width32} {
		got, err := ParseWidth(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseWidth("12")
	assert.ErrorIs(t, err, ErrUnknownWidth)

	assert.Equal(t, uint64(256), Width8.Capacity())
	assert.Equal(t, uint64(1)<<32, Width32.Capacity())
}
