// Package mandel renders the Mandelbrot set into an RGB raster.
//
// # Overview
//
// Every pixel (i, j) of a width×height raster is mapped onto a fixed window of
// the complex plane, iterated with z ← z² + c starting at z = 0, and colored
// from the resulting escape time.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	cfg := mandel.DefaultConfig()
//	cfg.Output = "set.png"
//
//	r, err := mandel.NewRenderer(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, err := r.RenderFile() // writes output/set.png
//
// # Pipeline
//
// The render is split into small pure steps that can be tested in isolation:
//   - Plane mapping: [View.PixelToPoint]
//   - Escape time: [EscapeTime]
//   - Coloring: [Shade]
//   - Orchestration: [Renderer.Render], [Renderer.RenderFile]
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel. Column i grows to the right along the
// real axis, row j grows downward along the imaginary axis. The view is not
// aspect-corrected: a non-square raster shows a stretched set.
//
// # Concurrency
//
// Rendering is sequential by default. [WithWorkers] spreads disjoint column
// stripes over a worker pool; the pixels produced are identical either way.
package mandel

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"
)
