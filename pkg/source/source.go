// Package source loads and decodes the images a conversion reads from.
package source

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"img2array/pkg/bitmap"
)

// DecodeError means an image could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error opening image file %q: %s", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func New(fs afero.Fs, cli *resty.Client, logger *zap.Logger) *Loader {
	return &Loader{
		fs:  fs,
		cli: cli,
		log: logger.With(zap.String("via", "source")),
	}
}

type Loader struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func (l *Loader) read(path string) ([]byte, error) {
	if !isRemote(path) {
		return afero.ReadFile(l.fs, path)
	}

	resp, err := l.cli.R().Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Errorf("unexpected status %s", resp.Status())
	}

	return resp.Body(), nil
}

// Image reads path from the filesystem, or over http when it is a URL, and
// decodes it with any registered image format.
func (l *Loader) Image(path string) (image.Image, error) {
	bs, err := l.read(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	img, name, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: errors.Wrap(err, "image decode failed")}
	}

	l.log.With(
		zap.String("path", path),
		zap.String("format", name),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Debug("decoded")

	return img, nil
}

// Grid is Image followed by bitmap.FromImage.
func (l *Loader) Grid(path string) (*bitmap.Grid, error) {
	img, err := l.Image(path)
	if err != nil {
		return nil, err
	}
	return bitmap.FromImage(img), nil
}
