// SPDX-License-Identifier: MIT
// Package: boltgroup/pattern
//
// types.go — sentinel errors, functional options, and shared constants.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Generators wrap sentinels with the generator name and offending value.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...), which reject programmer errors only.

package pattern

import (
	"errors"
	"math"
)

// ErrBadRadius indicates a circle radius that is not finite or not positive.
// Usage: if errors.Is(err, ErrBadRadius) { /* reject layout parameters */ }.
var ErrBadRadius = errors.New("pattern: radius must be finite and positive")

// ErrBadCount indicates a fastener count below the minimum of 1.
// Counts of 1 and 2 are degenerate but valid layouts.
var ErrBadCount = errors.New("pattern: count too small")

// ErrBadSpan indicates a rectangle span that is not finite or not positive.
var ErrBadSpan = errors.New("pattern: span must be finite and positive")

// ErrBadDivisions indicates fewer than 2 fasteners along a rectangle edge
// direction; the perimeter needs at least the four corners.
var ErrBadDivisions = errors.New("pattern: divisions too small")

// Generator method tags and layout minima (no magic literals).
const (
	methodCircle    = "Circle"
	methodRectangle = "Rectangle"

	minCount     = 1 // smallest valid circle population
	minDivisions = 2 // smallest valid per-edge fastener count

	fullTurnDeg = 360.0           // one revolution, degrees
	topDeg      = 90.0            // angular position of "top" in standard orientation
	degToRad    = math.Pi / 180.0 // degree → radian factor
)

// Options aggregates the layout knobs shared by generators.
// It is resolved once per call and passed by value.
type Options struct {
	// startDeg rotates the circular layout clockwise, in degrees.
	startDeg float64
}

// Option mutates Options before generation begins.
type Option func(*Options)

// DefaultOptions returns the deterministic defaults: start angle 0
// (first fastener exactly at the top of the circle).
func DefaultOptions() Options {
	return Options{startDeg: 0}
}

// WithStartAngle rotates the circular layout clockwise by deg degrees.
// Any finite value is accepted (including negatives, which rotate
// counter-clockwise). Panics on NaN/Inf: a non-finite angle is a
// programmer error, not a layout parameter.
func WithStartAngle(deg float64) Option {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		panic("pattern: WithStartAngle(non-finite)")
	}
	return func(o *Options) {
		o.startDeg = deg
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
