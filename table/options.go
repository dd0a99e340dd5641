package table

import "golang.org/x/text/language"

// DefaultPrecision is the number of decimal places rendered when
// WithPrecision is not given.
const DefaultPrecision = 2

// Options configure rendering. Use the With* constructors.
type Options struct {
	precision int
	plain     bool
	locale    language.Tag
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the renderer defaults: two decimal places,
// bordered style, English digit grouping.
func DefaultOptions() Options {
	return Options{precision: DefaultPrecision, locale: language.English}
}

// WithPrecision sets the number of decimal places for every numeric cell.
// Panics if digits is negative.
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic("table: WithPrecision(negative)")
	}
	return func(o *Options) { o.precision = digits }
}

// WithPlain renders unbordered whitespace-aligned text, fit for pipes and
// logs rather than terminals.
func WithPlain() Option {
	return func(o *Options) { o.plain = true }
}

// WithLocale sets the locale used for digit grouping and decimal marks.
func WithLocale(tag language.Tag) Option {
	return func(o *Options) { o.locale = tag }
}

// newOptions folds opts over the defaults; the last write wins.
func newOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
