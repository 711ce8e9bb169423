package app

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"

	"img2array/pkg/convert"
)

// Preview encodes r as a PNG, enlarged scale times with hard pixel edges.
func Preview(w io.Writer, r *convert.Result, scale int) error {
	img := imaging.Resize(r.Image(), r.Width*scale, r.Height*scale, imaging.NearestNeighbor)
	return imaging.Encode(w, img, imaging.PNG)
}

// SavePreview encodes the preview in memory and only then writes it to path,
// so a failed encode leaves no file behind.
func SavePreview(fs afero.Fs, path string, r *convert.Result, scale int) error {
	var buf bytes.Buffer
	if err := Preview(&buf, r, scale); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}
