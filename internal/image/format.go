// Package image encodes and decodes raster files for mandel.
//
// The file format is picked from the output path extension, so callers never
// name an encoder directly.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an image file encoding.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG. It is lossy.
	FormatJPEG

	// FormatGIF is GIF. Lossless for images with at most 256 distinct colors.
	FormatGIF

	// FormatBMP is uncompressed 24-bit BMP.
	FormatBMP

	// FormatTIFF is TIFF.
	FormatTIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the conventional format name.
	Name string

	// Extensions lists recognized file extensions, lower case with the dot.
	Extensions []string

	// Lossless indicates that encoding then decoding preserves every pixel
	// of an opaque image.
	Lossless bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatPNG: {
		Name:       "PNG",
		Extensions: []string{".png"},
		Lossless:   true,
	},
	FormatJPEG: {
		Name:       "JPEG",
		Extensions: []string{".jpg", ".jpeg"},
		Lossless:   false,
	},
	FormatGIF: {
		Name:       "GIF",
		Extensions: []string{".gif"},
		Lossless:   true,
	},
	FormatBMP: {
		Name:       "BMP",
		Extensions: []string{".bmp"},
		Lossless:   true,
	},
	FormatTIFF: {
		Name:       "TIFF",
		Extensions: []string{".tif", ".tiff"},
		Lossless:   true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return f.Info().Name
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// IsLossless returns true if the format round-trips opaque pixels exactly.
func (f Format) IsLossless() bool {
	return f.Info().Lossless
}

// Extensions returns the file extensions recognized for this format.
func (f Format) Extensions() []string {
	return f.Info().Extensions
}

// Formats returns every supported format.
func Formats() []Format {
	out := make([]Format, 0, formatCount)
	for f := range formatCount {
		out = append(out, f)
	}
	return out
}

// FormatFromPath returns the format matching the extension of path.
// Matching is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, fmt.Errorf("%w: no file extension", ErrUnsupportedFormat)
	}
	for f := range formatCount {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
