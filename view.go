package mandel

import "fmt"

// Bounds of the default view window.
const (
	DefaultXMin = -1.5
	DefaultXMax = 0.5
	DefaultYMin = -1.0
	DefaultYMax = 1.0
)

// View is the rectangle of the complex plane covered by a raster.
// X runs along the real axis, Y along the imaginary axis.
type View struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultView covers real [-1.5, 0.5] × imaginary [-1.0, 1.0].
var DefaultView = View{
	XMin: DefaultXMin,
	XMax: DefaultXMax,
	YMin: DefaultYMin,
	YMax: DefaultYMax,
}

// PixelToPoint maps pixel (i, j) of a width×height raster onto the view.
//
// Pixel (0, 0) maps to (XMin, YMin) and the virtual pixel (width, height)
// maps to (XMax, YMax). The mapping is affine per axis and ignores aspect
// ratio. width and height must be positive.
func (v View) PixelToPoint(i, j, width, height int) complex128 {
	x := (float64(i)/float64(width))*(v.XMax-v.XMin) + v.XMin
	y := (float64(j)/float64(height))*(v.YMax-v.YMin) + v.YMin
	return complex(x, y)
}

// String formats the view as its two axis ranges.
func (v View) String() string {
	return fmt.Sprintf("re [%g, %g]  im [%g, %g]", v.XMin, v.XMax, v.YMin, v.YMax)
}
