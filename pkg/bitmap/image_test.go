package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage(t *testing.T) {
	img := NewImage(2, 2, []uint32{0xF800, 0x07E0, 0x001F, 0xFFFF}, RGB565)

	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0xFF}, img.At(0, 0))
	assert.Equal(t, color.NRGBA{0, 0xFF, 0, 0xFF}, img.At(1, 0))
	assert.Equal(t, color.NRGBA{0, 0, 0xFF, 0xFF}, img.At(0, 1))
	assert.Equal(t, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.At(1, 1))
	assert.Equal(t, color.NRGBA{}, img.At(2, 0))
}

func TestImageRoundtripGrid(t *testing.T) {
	g := NewGrid(2, 1)
	g.Pix[0] = color.NRGBA{0x12, 0x34, 0x56, 0xFF}
	g.Pix[1] = color.NRGBA{0xAB, 0xCD, 0xEF, 0xFF}

	colors := []uint32{Encode(g.Pix[0], RGB888), Encode(g.Pix[1], RGB888)}
	back := FromImage(NewImage(2, 1, colors, RGB888))
	assert.Equal(t, g.Pix, back.Pix)
}
