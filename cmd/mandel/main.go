// Command mandel renders the Mandelbrot set to an image file.
//
// Usage:
//
//	mandel [flags] <file>
//
// The file is written to the existing directory ./output; its extension
// selects the encoding (.png, .jpg, .gif, .bmp, .tif).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/progress"
)

// usageError marks errors caused by the command line rather than the render.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usagef returns a usageError with the program name prefixed.
func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf("mandel: "+format, args...)}
}

// isUsage reports whether err came from the command line.
func isUsage(err error) bool {
	var uerr *usageError
	return errors.As(err, &uerr)
}

// Errors reaching main already carry the "mandel: " prefix.
func main() {
	log.SetFlags(0)

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if code := exitCode(err); code != 0 {
		log.Print(err)
		os.Exit(code)
	}
}

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case isUsage(err):
		return 2
	default:
		return 1
	}
}

type options struct {
	width   uint
	height  uint
	limit   uint
	workers int
	quality int
	caption bool
	quiet   bool
	verbose bool
	noColor bool
}

func newFlagSet(o *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.UintVar(&o.width, "width", mandel.DefaultWidth, "image width in pixels")
	fs.UintVar(&o.width, "w", mandel.DefaultWidth, "shorthand for -width")
	fs.UintVar(&o.height, "height", mandel.DefaultHeight, "image height in pixels")
	fs.UintVar(&o.height, "h", mandel.DefaultHeight, "shorthand for -height")
	fs.UintVar(&o.limit, "limit", uint(mandel.DefaultIterationLimit), "iteration limit (1-255)")
	fs.IntVar(&o.workers, "workers", 1,
		fmt.Sprintf("render goroutines, at most %d (1 renders sequentially)", mandel.MaxWorkers))
	fs.IntVar(&o.quality, "quality", mandel.DefaultJPEGQuality, "JPEG quality (1-100)")
	fs.BoolVar(&o.caption, "caption", false, "stamp the view window and limit on the image")
	fs.BoolVar(&o.quiet, "quiet", false, "do not draw the progress bar")
	fs.BoolVar(&o.verbose, "verbose", false, "log render details to stderr")
	fs.BoolVar(&o.noColor, "no-color", false, "draw the progress bar without colors")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mandel [flags] <file>\n\n")
		fmt.Fprintf(fs.Output(), "Renders the Mandelbrot set to output/<file>.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses flags anywhere on the command line and returns the
// positional arguments in order. Everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := newFlagSet(&o, stderr)

	positional, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usagef("%w", err)
	}
	switch {
	case len(positional) == 0:
		fs.Usage()
		return usagef("missing output file name")
	case len(positional) > 1:
		return usagef("unexpected arguments %q", positional[1:])
	}
	if o.limit > math.MaxUint8 {
		return usagef("-limit must be in 1..255, got %d", o.limit)
	}

	cfg := mandel.DefaultConfig()
	cfg.Width = int(o.width)
	cfg.Height = int(o.height)
	cfg.Output = positional[0]
	cfg.IterationLimit = uint8(o.limit)
	cfg.Workers = o.workers
	cfg.JPEGQuality = o.quality
	cfg.Caption = o.caption

	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}

	if o.verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var p mandel.Progress = mandel.NopProgress{}
	if !o.quiet {
		p = progress.New(stdout, progress.WithColor(!o.noColor))
	}

	r, err := mandel.NewRenderer(cfg, mandel.WithProgress(p))
	if err != nil {
		return &usageError{err: err}
	}

	_, err = r.RenderFile()
	return err
}
