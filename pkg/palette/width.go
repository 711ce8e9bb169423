package palette

import (
	"strconv"

	"github.com/pkg/errors"
)

// Width is the size in bits of one palette index.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

var ErrUnknownWidth = errors.New("unknown palette size")

func ParseWidth(s string) (Width, error) {
	switch s {
	case "8":
		return Width8, nil
	case "16":
		return Width16, nil
	case "32":
		return Width32, nil
	}
	return Width8, errors.Wrapf(ErrUnknownWidth, "parse %q", s)
}

// Capacity is the number of distinct indices the width can address.
func (w Width) Capacity() uint64 {
	return 1 << uint(w)
}

func (w Width) String() string {
	return strconv.Itoa(int(w))
}

// Set implements pflag.Value.
func (w *Width) Set(s string) error {
	v, err := ParseWidth(s)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Type implements pflag.Value.
func (w *Width) Type() string {
	return "bits"
}
