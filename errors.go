package mandel

import (
	"errors"

	ximage "github.com/gogpu/mandel/internal/image"
)

// Configuration errors. Validate wraps one of these with the offending value.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("mandel: width and height must be positive")

	// ErrTooLarge is returned when width or height exceeds MaxDimension or
	// the pixel count exceeds MaxPixels.
	ErrTooLarge = errors.New("mandel: dimensions too large")

	// ErrTooManyWorkers is returned when more than MaxWorkers goroutines are
	// requested.
	ErrTooManyWorkers = errors.New("mandel: too many workers")

	// ErrMissingOutput is returned when no output file name is configured.
	ErrMissingOutput = errors.New("mandel: missing output file name")

	// ErrInvalidLimit is returned when the iteration limit is zero.
	ErrInvalidLimit = errors.New("mandel: iteration limit must be at least 1")

	// ErrInvalidQuality is returned when the JPEG quality is outside 1..100.
	ErrInvalidQuality = errors.New("mandel: JPEG quality must be in 1..100")

	// ErrUnsupportedFormat is returned when the output extension has no encoder.
	ErrUnsupportedFormat = ximage.ErrUnsupportedFormat
)
