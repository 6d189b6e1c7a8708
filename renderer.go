package mandel

import (
	"fmt"
	"time"

	"github.com/gogpu/mandel/internal/caption"
	"github.com/gogpu/mandel/internal/parallel"
)

// Renderer renders one Config into a Raster.
type Renderer struct {
	cfg      Config
	progress Progress
	workers  int
	view     View
}

// NewRenderer validates the raster fields of cfg and returns a Renderer for
// it. The output file is checked by RenderFile. A worker count above
// MaxWorkers, from cfg or WithWorkers, fails with ErrTooManyWorkers.
func NewRenderer(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.validateRaster(); err != nil {
		return nil, err
	}

	o := defaultOptions(cfg)
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateWorkers(o.workers); err != nil {
		return nil, err
	}

	return &Renderer{
		cfg:      cfg,
		progress: o.progress,
		workers:  o.workers,
		view:     o.view,
	}, nil
}

// Config returns the configuration the renderer was created with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render computes every pixel of the raster, one Increment per column.
//
// The result does not depend on the number of workers.
func (r *Renderer) Render() *Raster {
	start := time.Now()
	raster := NewRaster(r.cfg.Width, r.cfg.Height)

	if r.workers > 1 {
		r.renderParallel(raster)
	} else {
		for i := range r.cfg.Width {
			r.renderColumn(raster, i)
			r.progress.Increment()
		}
	}

	if r.cfg.Caption {
		if err := caption.Draw(raster, r.Caption()); err != nil {
			Logger().Warn("mandel: caption skipped", "err", err)
		}
	}

	Logger().Debug("mandel: render done",
		"width", r.cfg.Width,
		"height", r.cfg.Height,
		"limit", r.cfg.IterationLimit,
		"workers", max(r.workers, 1),
		"elapsed", time.Since(start),
	)
	return raster
}

// renderColumn fills column i of raster.
func (r *Renderer) renderColumn(raster *Raster, i int) {
	w, h := r.cfg.Width, r.cfg.Height
	for j := range h {
		c := r.view.PixelToPoint(i, j, w, h)
		raster.SetRGB(i, j, Shade(EscapeTime(c, r.cfg.IterationLimit)))
	}
}

// renderParallel fills raster stripe by stripe on a worker pool.
// Stripes are disjoint, so workers never write the same pixel. The pool
// never has more workers than stripes.
func (r *Renderer) renderParallel(raster *Raster) {
	stripes := parallel.Stripes(r.cfg.Width, parallel.StripeWidth)
	pool := parallel.NewPool(min(r.workers, len(stripes)))
	defer pool.Close()

	progress := &syncProgress{p: r.progress}

	Logger().Debug("mandel: parallel render",
		"workers", pool.Workers(),
		"stripes", len(stripes),
	)

	jobs := make([]func(), len(stripes))
	for k, s := range stripes {
		jobs[k] = func() {
			for i := s.Min; i < s.Max; i++ {
				r.renderColumn(raster, i)
				progress.Increment()
			}
		}
	}
	pool.Run(jobs)
}

// Caption returns the text stamped on the raster when Config.Caption is set.
func (r *Renderer) Caption() string {
	return fmt.Sprintf("%v  limit %d", r.view, r.cfg.IterationLimit)
}

// RenderFile renders the raster and writes it to Config.OutputPath.
//
// The whole configuration is validated before any pixel is computed.
// Progress sees width+1 units: one per column and one for the save. On
// failure the error is reported to the progress sink and returned; the
// success message is never emitted.
func (r *Renderer) RenderFile() (string, error) {
	if err := r.cfg.Validate(); err != nil {
		return "", err
	}

	path := r.cfg.OutputPath()
	p := r.progress

	p.Init(r.cfg.Width + 1)
	p.SetAction("Calculating", StatusProcessing)

	raster := r.Render()

	p.Info("Success", "All pixels have been calculated", StatusSuccess)
	p.SetAction("Saving", StatusProcessing)

	if err := raster.Save(path, r.cfg.JPEGQuality); err != nil {
		p.Info("Failed", err.Error(), StatusFailure)
		p.Finish()
		Logger().Warn("mandel: save failed", "path", path, "err", err)
		return "", fmt.Errorf("mandel: save %s: %w", path, err)
	}

	p.Increment()
	p.Info("Saved", "Saved output file to "+path, StatusSuccess)
	p.Finish()

	Logger().Info("mandel: saved", "path", path)
	return path, nil
}

// Render renders cfg without progress. The output fields of cfg are not
// checked.
func Render(cfg Config) (*Raster, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return r.Render(), nil
}
