package app

import (
	flag "github.com/spf13/pflag"

	"img2array/pkg/bitmap"
	"img2array/pkg/palette"
)

// Config carries the options shared by the commands.
type Config struct {
	Image     string
	Palette   string
	Format    bitmap.Format
	Width     palette.Width
	NoPalette bool
	Debug     bool
}

func NewConfig() *Config {
	return &Config{
		Format: bitmap.RGB565,
		Width:  palette.Width8,
	}
}

// Bind registers the conversion flags on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.VarP(&c.Format, "colour", "c", "set colour format ([RGB]565, RGB[888])")
	fs.StringVarP(&c.Palette, "palette", "p", "", "set palette file or URL")
	fs.Var(&c.Width, "palsize", "set palette size in bits (8, 16, 32)")
	fs.BoolVar(&c.NoPalette, "no-palette", false, "write colours directly instead of palette indices")
	fs.BoolVar(&c.Debug, "debug", false, "set debug")
}
