package mandel

import (
	"image"
	"image/color"

	ximage "github.com/gogpu/mandel/internal/image"
)

// bytesPerPixel is the size of one RGB pixel in a Raster.
const bytesPerPixel = 3

// Raster is a width×height grid of opaque RGB pixels.
//
// Pixels are stored row-major, 3 bytes each, with (0,0) at the top-left.
// Distinct pixels occupy distinct bytes, so goroutines writing disjoint
// pixels need no locking.
type Raster struct {
	width  int
	height int
	data   []uint8
}

// NewRaster creates a black raster with the given dimensions.
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.width * bytesPerPixel
}

// Data returns the raw pixel data (RGB, row-major).
func (r *Raster) Data() []uint8 {
	return r.data
}

// SetRGB sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (r *Raster) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * bytesPerPixel
	r.data[i+0] = c.R
	r.data[i+1] = c.G
	r.data[i+2] = c.B
}

// RGBAt returns the color of a single pixel.
// Out-of-bounds coordinates return black.
func (r *Raster) RGBAt(x, y int) RGB {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return Black
	}
	i := (y*r.width + x) * bytesPerPixel
	return RGB{R: r.data[i+0], G: r.data[i+1], B: r.data[i+2]}
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	c := r.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Set implements the draw.Image interface. Alpha is discarded.
func (r *Raster) Set(x, y int, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r.SetRGB(x, y, RGB{R: rgba.R, G: rgba.G, B: rgba.B})
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage converts the raster to an opaque image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	for i, j := 0, 0; i < len(r.data); i, j = i+bytesPerPixel, j+4 {
		img.Pix[j+0] = r.data[i+0]
		img.Pix[j+1] = r.data[i+1]
		img.Pix[j+2] = r.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Save encodes the raster to path. The file format follows the extension.
// quality applies to JPEG only; values outside 1..100 are clamped.
func (r *Raster) Save(path string, quality int) error {
	return ximage.Save(path, r.ToImage(), &ximage.Options{Quality: quality})
}
