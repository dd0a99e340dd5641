// SPDX-License-Identifier: MIT
// Package: boltgroup/group
//
// options.go — functional options for the analysis entry points.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Area and pivot VALUES are analysis inputs, not programmer knobs, so
//     constructors accept them unvalidated; entry points validate and
//     return sentinel errors (never panic on user-triggered conditions).
//   • Later options override earlier ones; WithUniformArea and WithAreas
//     clear each other.

package group

import (
	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/units"
)

// DefaultArea is the uniform load-sharing area applied when no area option
// is given. With every fastener at area 1, weighting degenerates to the
// unweighted mean and load shares to 1/N.
const DefaultArea = 1.0

// Options aggregates the analysis knobs resolved at each entry point.
type Options struct {
	// uniform is the broadcast area, used while areas is nil.
	uniform float64
	// areas is the explicit per-fastener slice; nil means "broadcast".
	areas []float64
	// pivot is the override; nil means "compute the weighted centroid".
	pivot *geom.Point
	// units is the system all magnitudes are expressed in.
	units units.System
}

// Option mutates Options before an analysis begins.
type Option func(*Options)

// DefaultOptions returns the deterministic defaults: uniform area 1,
// computed centroid pivot, millimetre/newton units.
func DefaultOptions() Options {
	return Options{uniform: DefaultArea, units: units.SI()}
}

// WithUniformArea assigns one load-sharing area to every fastener.
// The value is validated at the entry point (must be finite and > 0).
func WithUniformArea(a float64) Option {
	return func(o *Options) {
		o.uniform = a
		o.areas = nil
	}
}

// WithAreas assigns explicit per-fastener areas, index-aligned with the
// point set. Length and positivity are validated at the entry point.
// A nil slice restores the uniform default.
func WithAreas(areas []float64) Option {
	return func(o *Options) {
		o.areas = areas
	}
}

// WithPivot measures offsets, inertias, and moment effects about p instead
// of the computed area-weighted centroid. The weighted-centroid computation
// is skipped entirely.
func WithPivot(p geom.Point) Option {
	return func(o *Options) {
		o.pivot = &p
	}
}

// WithUnits declares the unit system the caller's magnitudes are expressed
// in. The engine never converts; the system is carried through results so
// presentation layers can.
func WithUnits(sys units.System) Option {
	return func(o *Options) {
		o.units = sys
	}
}

// newOptions resolves defaults and applies options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
