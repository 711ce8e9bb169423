package convert

import (
	"go.uber.org/zap"

	"img2array/pkg/bitmap"
	"img2array/pkg/palette"
)

type Option func(c *Converter)

func WithFormat(f bitmap.Format) Option {
	return func(c *Converter) {
		c.format = f
	}
}

func WithIndexWidth(w palette.Width) Option {
	return func(c *Converter) {
		c.width = w
	}
}

// WithoutPalette emits encoded colours directly. Any supplied palette image
// is ignored.
func WithoutPalette() Option {
	return func(c *Converter) {
		c.usePalette = false
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		c.log = log.With(zap.String("via", "converter"))
	}
}
