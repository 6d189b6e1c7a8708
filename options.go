package mandel

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := mandel.NewRenderer(cfg,
//		mandel.WithProgress(bar),
//		mandel.WithWorkers(runtime.NumCPU()),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	progress Progress
	workers  int
	view     View
}

// defaultOptions returns the options derived from cfg.
func defaultOptions(cfg Config) rendererOptions {
	return rendererOptions{
		progress: NopProgress{},
		workers:  cfg.Workers,
		view:     DefaultView,
	}
}

// WithProgress sets the sink receiving render progress.
// A nil Progress discards progress.
func WithProgress(p Progress) Option {
	return func(o *rendererOptions) {
		if p == nil {
			p = NopProgress{}
		}
		o.progress = p
	}
}

// WithWorkers overrides Config.Workers. Values ≤ 1 render sequentially;
// larger values render column stripes on that many goroutines.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithView replaces DefaultView. The CLI never sets it; it exists for
// library callers and tests that need a different window.
func WithView(v View) Option {
	return func(o *rendererOptions) {
		o.view = v
	}
}
