package mandel

import (
	"fmt"
	"path/filepath"

	ximage "github.com/gogpu/mandel/internal/image"
)

// Defaults used by DefaultConfig.
const (
	DefaultWidth       = 512
	DefaultHeight      = 512
	DefaultOutputDir   = "output"
	DefaultJPEGQuality = 95

	// MaxDimension bounds width and height.
	MaxDimension = 1 << 15

	// MaxPixels bounds Width*Height. The raster and its encoder copy take
	// 7 bytes per pixel together.
	MaxPixels = 1 << 26

	// MaxWorkers bounds Workers.
	MaxWorkers = 256
)

// Config is the immutable description of one render.
type Config struct {
	// Width and Height are the raster dimensions in pixels.
	Width  int
	Height int

	// Output is the file name written under OutputDir. Its extension picks
	// the encoding.
	Output string

	// OutputDir is the directory the file is written into. It must exist.
	OutputDir string

	// IterationLimit caps the escape-time iteration.
	IterationLimit uint8

	// Workers is the number of goroutines used by Render. Values ≤ 1 render
	// sequentially.
	Workers int

	// Caption draws the view and limit in the bottom-left corner.
	Caption bool

	// JPEGQuality is used when Output has a JPEG extension.
	JPEGQuality int
}

// DefaultConfig returns a 512×512 configuration with no output name.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		OutputDir:      DefaultOutputDir,
		IterationLimit: DefaultIterationLimit,
		Workers:        1,
		JPEGQuality:    DefaultJPEGQuality,
	}
}

// Validate reports the first invalid field, wrapping one of the package
// sentinel errors.
func (c Config) Validate() error {
	if err := c.validateRaster(); err != nil {
		return err
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	f, err := ximage.FormatFromPath(c.Output)
	if err != nil {
		return fmt.Errorf("mandel: output %q: %w", c.Output, err)
	}
	if f == ximage.FormatJPEG && (c.JPEGQuality < 1 || c.JPEGQuality > 100) {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, c.JPEGQuality)
	}
	return nil
}

// validateRaster checks the fields needed to compute pixels, ignoring the
// output file.
func (c Config) validateRaster() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: got %dx%d, max %d per side", ErrTooLarge, c.Width, c.Height, MaxDimension)
	}
	if c.Width*c.Height > MaxPixels {
		return fmt.Errorf("%w: got %dx%d, max %d pixels", ErrTooLarge, c.Width, c.Height, MaxPixels)
	}
	if err := validateWorkers(c.Workers); err != nil {
		return err
	}
	if c.IterationLimit == 0 {
		return ErrInvalidLimit
	}
	return nil
}

func validateWorkers(n int) error {
	if n > MaxWorkers {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyWorkers, n, MaxWorkers)
	}
	return nil
}

// OutputPath returns the path the rendered file is written to.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.Output)
}
