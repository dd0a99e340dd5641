package plot

import "math"

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Options configure the canvas. Use the With* constructors.
type Options struct {
	width  int
	height int
	labels bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the plot defaults: 800×600 canvas with labels.
func DefaultOptions() Options {
	return Options{width: DefaultWidth, height: DefaultHeight, labels: true}
}

// WithSize sets the canvas size in pixels. Panics if either dimension is
// not positive.
func WithSize(width, height int) Option {
	if width < 1 || height < 1 {
		panic("plot: WithSize(non-positive)")
	}
	return func(o *Options) { o.width = width; o.height = height }
}

// WithoutLabels suppresses index and axis labels.
func WithoutLabels() Option {
	return func(o *Options) { o.labels = false }
}

// newOptions folds opts over the defaults; the last write wins.
func newOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// margin returns the blank border in pixels: a tenth of the short side,
// at most 48.
func (o Options) margin() float64 {
	return math.Min(0.1*float64(min(o.width, o.height)), 48)
}
