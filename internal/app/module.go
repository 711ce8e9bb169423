// Package app wires the conversion pipeline for the commands.
package app

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"img2array/pkg/bitmap"
	"img2array/pkg/convert"
	"img2array/pkg/source"
)

// Module provides everything but the afero.Fs, which the caller supplies.
var Module = fx.Options(
	fx.Provide(
		NewLogger,
		resty.New,
		source.New,
		NewConverter,
	),
)

func NewLogger(c *Config) (*zap.Logger, error) {
	if c.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func NewConverter(c *Config, logger *zap.Logger) *convert.Converter {
	opts := []convert.Option{
		convert.WithFormat(c.Format),
		convert.WithIndexWidth(c.Width),
		convert.WithLogger(logger),
	}
	if c.NoPalette {
		opts = append(opts, convert.WithoutPalette())
	}
	return convert.New(opts...)
}

// Convert loads the configured image and palette and converts them. The
// palette image is not read at all in no-palette mode.
func Convert(c *Config, loader *source.Loader, conv *convert.Converter) (*convert.Result, error) {
	img, err := loader.Grid(c.Image)
	if err != nil {
		return nil, err
	}

	var pal *bitmap.Grid
	if c.Palette != "" && !c.NoPalette {
		if pal, err = loader.Grid(c.Palette); err != nil {
			return nil, err
		}
	}

	return conv.Convert(img, pal)
}
