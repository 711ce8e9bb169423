// Package convert turns a pixel grid into palette indices or encoded colours
// ready to be rendered as array data.
package convert

import (
	"go.uber.org/zap"

	"img2array/pkg/bitmap"
	"img2array/pkg/palette"
)

func New(opts ...Option) *Converter {
	c := &Converter{
		format:     bitmap.RGB565,
		width:      palette.Width8,
		usePalette: true,
		log:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Converter struct {
	format     bitmap.Format
	width      palette.Width
	usePalette bool
	log        *zap.Logger
}

// Convert runs the whole conversion for img. When pal is non-nil its colours
// form the palette and every image colour must be one of them; otherwise the
// palette is built from img. No result is returned on error.
func (c *Converter) Convert(img *bitmap.Grid, pal *bitmap.Grid) (*Result, error) {
	log := c.log.With(
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Stringer("format", c.format),
	)

	var p *palette.Palette
	if c.usePalette {
		var err error
		if p, err = c.buildPalette(img, pal); err != nil {
			return nil, err
		}
		log = log.With(zap.Int("colors", p.Len()), zap.Stringer("index", c.width))
	}

	values, err := Map(img, c.format, p)
	if err != nil {
		return nil, err
	}

	log.Debug("converted")

	return &Result{
		Width:      img.Width,
		Height:     img.Height,
		Format:     c.format,
		IndexWidth: c.width,
		Palette:    p,
		Values:     values,
	}, nil
}

func (c *Converter) buildPalette(img *bitmap.Grid, pal *bitmap.Grid) (*palette.Palette, error) {
	if pal == nil {
		p := palette.Build(img, c.format)
		c.log.With(zap.Int("colors", p.Len())).Debug("palette built from image")
		if err := p.Fits(c.width); err != nil {
			return nil, err
		}
		return p, nil
	}

	p := palette.Build(pal, c.format)
	c.log.With(zap.Int("colors", p.Len()), zap.Int("pixels", pal.Len())).Debug("palette loaded")

	if err := p.Validate(img); err != nil {
		return nil, err
	}
	if err := p.Fits(c.width); err != nil {
		return nil, err
	}
	return p, nil
}
