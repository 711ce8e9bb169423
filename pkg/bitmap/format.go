package bitmap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Format selects how a color is packed into an encoded value.
type Format int

const (
	RGB565 Format = iota
	RGB888
)

var ErrUnknownFormat = errors.New("unknown colour format")

func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(s) {
	case "RGB565", "565":
		return RGB565, nil
	case "RGB", "RGB888", "888":
		return RGB888, nil
	}
	return RGB565, errors.Wrapf(ErrUnknownFormat, "parse %q", s)
}

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case RGB888:
		return "RGB888"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Bits is the storage width of an encoded value.
func (f Format) Bits() int {
	if f == RGB888 {
		return 32
	}
	return 16
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}
