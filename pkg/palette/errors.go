package palette

import (
	"fmt"

	"github.com/pkg/errors"

	"img2array/pkg/bitmap"
)

var (
	ErrCapacity     = errors.New("palette over capacity")
	ErrMissingColor = errors.New("colour not in palette")
)

// CapacityError reports a palette with more colours than its index width can
// address.
type CapacityError struct {
	Size  int
	Width Width
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("image has too many colours for palette size of %d bits (%d colours, max %d)",
		e.Width, e.Size, e.Width.Capacity())
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

// MissingColorError reports the first image pixel whose colour is absent from
// a supplied palette.
type MissingColorError struct {
	X, Y   int
	Color  uint32
	Source uint32 // 24-bit RGB of the pixel before encoding
	Format bitmap.Format
}

func (e *MissingColorError) Error() string {
	if e.Format == bitmap.RGB565 {
		return fmt.Sprintf("colour 0x%04X (0x%06X) at (%d,%d) isn't present in the palette",
			e.Color, e.Source, e.X, e.Y)
	}
	return fmt.Sprintf("colour 0x%06X at (%d,%d) isn't present in the palette",
		e.Color, e.X, e.Y)
}

func (e *MissingColorError) Is(target error) bool {
	return target == ErrMissingColor
}
