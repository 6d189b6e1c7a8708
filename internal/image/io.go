package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultQuality is the JPEG quality used when Options is nil.
const DefaultQuality = 95

// Options tunes encoding.
type Options struct {
	// Quality is the JPEG quality (1-100). Out-of-range values are clamped;
	// zero selects DefaultQuality.
	Quality int
}

func (o *Options) quality() int {
	if o == nil || o.Quality == 0 {
		return DefaultQuality
	}
	return min(max(o.Quality, 1), 100)
}

// Save encodes img to path in the format named by the path extension.
//
// The format is resolved before the file is created, so an unsupported
// extension leaves nothing on disk. The directory must already exist.
func Save(path string, img image.Image, opts *Options) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(file, img, f, opts); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format, opts *Options) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
	case FormatGIF:
		err = encodeGIF(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// encodeGIF writes img with an exact palette when it has at most 256 colors.
// Larger palettes fall back to the encoder's default quantization.
func encodeGIF(w io.Writer, img image.Image) error {
	pm, ok := exactPaletted(img)
	if !ok {
		return gif.Encode(w, img, nil)
	}
	return gif.Encode(w, pm, &gif.Options{NumColors: len(pm.Palette)})
}

// exactPaletted converts img to a paletted image without losing any color.
// Returns false if img has more than 256 distinct colors.
func exactPaletted(img image.Image) (*image.Paletted, bool) {
	bounds := img.Bounds()
	index := make(map[color.RGBA]uint8)
	var pal color.Palette

	pm := image.NewPaletted(bounds, nil)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			i, seen := index[c]
			if !seen {
				if len(pal) == 256 {
					return nil, false
				}
				i = uint8(len(pal))
				index[c] = i
				pal = append(pal, c)
			}
			pm.SetColorIndex(x, y, i)
		}
	}
	if len(pal) == 0 {
		pal = append(pal, color.RGBA{A: 0xff})
	}
	pm.Palette = pal
	return pm, true
}

// Load decodes the image stored at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting any supported format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}
