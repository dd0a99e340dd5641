package batch

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/boltgroup/group"
)

// ErrSchemaMismatch indicates a bundle written with a different schema
// version; re-run the analysis instead of trusting stale bytes.
var ErrSchemaMismatch = errors.New("batch: bundle schema mismatch")

// ErrBadBundle indicates a decoded bundle whose counts and slices disagree.
var ErrBadBundle = errors.New("batch: malformed bundle")

// Case couples a name with the loading it applies at the pivot.
type Case struct {
	Name      string
	Resultant group.Resultant
}

// Status is the lifecycle of one case inside a run.
type Status uint8

const (
	// StatusRunning is emitted when a worker picks the case up.
	StatusRunning Status = iota
	// StatusDone is emitted after a successful distribution.
	StatusDone
	// StatusFailed is emitted with the error that stopped the case.
	StatusFailed
)

// Event is one progress notification. Index refers to the case's position
// in the Run input.
type Event struct {
	Index  int
	Name   string
	Status Status
	// Err is set only for StatusFailed.
	Err error
}

// Result is the outcome of a run: the shared geometry and one LoadSet per
// case, index-aligned with the input.
type Result struct {
	Geometry group.Geometry
	Cases    []Case
	Sets     []group.LoadSet
}

// Options aggregates the run knobs.
type Options struct {
	jobs   int
	events func(Event)
}

// Option mutates Options before a run begins.
type Option func(*Options)

// DefaultOptions returns the deterministic defaults: GOMAXPROCS workers,
// no event callback.
func DefaultOptions() Options {
	return Options{jobs: runtime.GOMAXPROCS(0)}
}

// WithJobs bounds the number of concurrently distributed cases.
// Values ≤ 0 restore the GOMAXPROCS default.
func WithJobs(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.jobs = n
	}
}

// WithEvents registers a per-case progress callback. It is invoked from
// worker goroutines; fn must be safe for concurrent use. Panics on nil to
// surface the programmer error early.
func WithEvents(fn func(Event)) Option {
	if fn == nil {
		panic("batch: WithEvents(nil)")
	}
	return func(o *Options) {
		o.events = fn
	}
}

// newOptions resolves defaults and applies options in order (last wins).
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// emit fires the callback when one is registered.
func (o Options) emit(ev Event) {
	if o.events != nil {
		o.events(ev)
	}
}
