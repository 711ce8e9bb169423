package main

import (
	"fmt"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"img2array/internal/app"
	"img2array/pkg/convert"
	"img2array/pkg/output"
	"img2array/pkg/source"
)

var cfg = app.NewConfig()

var outFile = flag.StringP("output", "o", "output.c", "set output file name")
var name = flag.StringP("name", "n", "", "prefix for the generated array names")
var noProgmem = flag.Bool("no-progmem", false, "omit the PROGMEM attribute")
var progress = flag.Bool("progress", false, "show progress while writing")
var help = flag.BoolP("help", "h", false, "print this help message")

func init() {
	cfg.Bind(flag.CommandLine)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s IMAGE_PATH [options]\n", os.Args[0])
	flag.PrintDefaults()
}

func write(fs afero.Fs, r *convert.Result, logger *zap.Logger) error {
	n, err := output.Save(fs, *outFile, r,
		output.WithName(*name),
		output.WithProgmem(!*noProgmem),
		output.WithProgress(*progress),
	)
	if err != nil {
		return err
	}

	logger.With(
		zap.String("file", *outFile),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Debug("written")
	return nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "No image file specified")
		usage()
		os.Exit(1)
	}
	cfg.Image = flag.Arg(0)

	a := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(afero.NewOsFs),
		app.Module,
		fx.Invoke(func(fs afero.Fs, loader *source.Loader, conv *convert.Converter, logger *zap.Logger) error {
			defer func() {
				_ = logger.Sync()
			}()

			r, err := app.Convert(cfg, loader, conv)
			if err != nil {
				return err
			}
			return write(fs, r, logger)
		}),
	)

	if err := a.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Arrays written successfully to file %q\n", *outFile)
}
