package output

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"img2array/pkg/convert"
)

// Save renders r and writes it to path. The text goes to a temporary file in
// the same directory first and is renamed into place, so a failed save never
// leaves a partial file behind.
func Save(fs afero.Fs, path string, r *convert.Result, opts ...Option) (int64, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r, opts...); err != nil {
		return 0, err
	}

	c := newConfig(opts)
	tmp := filepath.Join(filepath.Dir(path), "."+xid.New().String()+".tmp")

	n, err := write(fs, tmp, buf.Bytes(), c.progress, path)
	if err != nil {
		_ = fs.Remove(tmp)
		return 0, fmt.Errorf("write output failed: %w", err)
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return 0, fmt.Errorf("write output failed: %w", err)
	}

	return n, nil
}

func write(fs afero.Fs, name string, data []byte, progress bool, target string) (int64, error) {
	f, err := fs.Create(name)
	if err != nil {
		return 0, err
	}

	var dst io.Writer = f
	if progress {
		bar := progressbar.DefaultBytes(int64(len(data)), fmt.Sprintf("Writing %s", target))
		dst = io.MultiWriter(f, bar)
	}

	n, err := io.Copy(dst, bytes.NewReader(data))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
