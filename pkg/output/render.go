// Package output renders conversion results as C array definitions.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"img2array/pkg/bitmap"
	"img2array/pkg/convert"
)

const (
	lineWidth = 80
	indent    = "    "
)

var ErrMalformed = errors.New("malformed result")

func colorType(f bitmap.Format) string {
	return fmt.Sprintf("uint%d_t", f.Bits())
}

func hexValues(values []uint32, f bitmap.Format) []string {
	layout := lo.Ternary(f == bitmap.RGB888, "0x%06X, ", "0x%04X, ")
	return lo.Map(values, func(v uint32, _ int) string {
		return fmt.Sprintf(layout, v)
	})
}

func indexValues(values []uint32) []string {
	return lo.Map(values, func(v uint32, _ int) string {
		return fmt.Sprintf("%d,", v)
	})
}

// wrap lays items out on indented lines of at most lineWidth columns.
func wrap(b *strings.Builder, items []string) {
	flush := func(line string) {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}

	line := indent
	for _, item := range items {
		if len(line)+len(item) > lineWidth && line != indent {
			flush(line)
			line = indent
		}
		line += item
	}
	if line != indent {
		flush(line)
	}
}

func array(b *strings.Builder, c *config, typ, name string, items []string) {
	attr := lo.Ternary(c.progmem, " PROGMEM", "")
	fmt.Fprintf(b, "\nconst %s %s[%d]%s = {\n", typ, name, len(items), attr)
	wrap(b, items)
	b.WriteString("};\n")
}

// Render writes r to w as a palette array (when r is indexed) followed by the
// image data array.
func Render(w io.Writer, r *convert.Result, opts ...Option) error {
	if r == nil || len(r.Values) != r.Width*r.Height {
		return ErrMalformed
	}

	c := newConfig(opts)

	var b strings.Builder
	b.WriteString("#include <stdint.h>\n")

	if r.Indexed() {
		array(&b, c, colorType(r.Format), c.paletteName(), hexValues(r.Palette.Colors(), r.Format))
		array(&b, c, fmt.Sprintf("uint%d_t", r.IndexWidth), c.dataName(), indexValues(r.Values))
	} else {
		array(&b, c, colorType(r.Format), c.dataName(), hexValues(r.Values, r.Format))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
