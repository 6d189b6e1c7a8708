// Package caption stamps a single line of text onto a raster.
package caption

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// MinHeight is the smallest image height that gets a caption.
const MinHeight = 24

// Size limits for the caption font, in pixels.
const (
	minFontSize = 8
	maxFontSize = 24
)

var (
	bandColor = color.NRGBA{A: 0xa0}
	textColor = color.White
)

// FontSize returns the font size used for an image of the given height.
func FontSize(height int) float64 {
	return min(max(float64(height)/32, minFontSize), maxFontSize)
}

// Draw renders text in the bottom-left corner of dst over a translucent band.
// Images shorter than MinHeight are left untouched.
func Draw(dst draw.Image, text string) error {
	b := dst.Bounds()
	if text == "" || b.Dy() < MinHeight {
		return nil
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("caption: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize(b.Dy()),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("caption: new face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	band, dot := layout(b, face, text)
	draw.Draw(dst, band, image.NewUniform(bandColor), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
	return nil
}

// layout returns the band rectangle and the baseline origin of the text.
func layout(b image.Rectangle, face font.Face, text string) (image.Rectangle, fixed.Point26_6) {
	m := face.Metrics()
	pad := m.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	height := m.Height.Ceil()

	band := image.Rect(
		b.Min.X,
		b.Max.Y-height-2*pad,
		b.Min.X+width+2*pad,
		b.Max.Y,
	).Intersect(b)

	dot := fixed.P(b.Min.X+pad, b.Max.Y-pad-m.Descent.Ceil())
	return band, dot
}
