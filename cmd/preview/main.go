package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"img2array/internal/app"
	"img2array/pkg/convert"
	"img2array/pkg/source"
)

var cfg = app.NewConfig()

var outFile = flag.StringP("output", "o", "preview.png", "preview file name")
var scale = flag.Int("scale", 4, "scale factor")

func init() {
	cfg.Bind(flag.CommandLine)
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 || *scale < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s IMAGE_PATH [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	cfg.Image = flag.Arg(0)

	a := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(afero.NewOsFs),
		app.Module,
		fx.Invoke(func(fs afero.Fs, loader *source.Loader, conv *convert.Converter, logger *zap.Logger) error {
			r, err := app.Convert(cfg, loader, conv)
			if err != nil {
				return err
			}

			if err := app.SavePreview(fs, *outFile, r, *scale); err != nil {
				return err
			}

			logger.With(zap.String("file", *outFile), zap.Int("scale", *scale)).Info("preview written")
			return nil
		}),
	)

	if err := a.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
