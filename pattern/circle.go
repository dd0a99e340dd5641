// SPDX-License-Identifier: MIT
// Package: boltgroup/pattern
//
// circle.go — Circle(radius, count) bolt-circle generator.
//
// Contract:
//   • radius must be finite and > 0 (else ErrBadRadius).
//   • count ≥ 1 (else ErrBadCount); count < 3 is degenerate but valid.
//   • Fastener i sits at angle (90° − start − i·360°/count), measured
//     counter-clockwise from +x: the first fastener is at the top minus the
//     start angle, subsequent fasteners proceed clockwise.
//   • The unweighted centroid of the result is the origin for count ≥ 2
//     (up to floating-point roundoff).
//
// Determinism:
//   • Stable order: clockwise from the start position, index 0 first.
//
// Complexity: O(count) time, O(count) space.

package pattern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boltgroup/geom"
)

// Circle returns count fastener positions evenly spaced on a circle of the
// given radius, centered on the origin. The first point is at the top of the
// circle rotated clockwise by the configured start angle (WithStartAngle);
// the rest follow clockwise at 360°/count increments.
func Circle(radius float64, count int, opts ...Option) ([]geom.Point, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%s: radius=%v (must be finite and > 0): %w",
			methodCircle, radius, ErrBadRadius)
	}
	if count < minCount {
		return nil, fmt.Errorf("%s: count=%d (must be ≥ %d): %w",
			methodCircle, count, minCount, ErrBadCount)
	}

	// 2) Resolve options once; generation below is branch-free.
	cfg := newOptions(opts...)

	// 3) Place fasteners clockwise from the rotated top position.
	step := fullTurnDeg / float64(count) // angular pitch, degrees
	pts := make([]geom.Point, count)
	for i := 0; i < count; i++ {
		// Angular position of fastener i, degrees CCW from +x.
		deg := topDeg - cfg.startDeg - float64(i)*step
		rad := deg * degToRad
		pts[i] = geom.Pt(radius*math.Cos(rad), radius*math.Sin(rad))
	}

	return pts, nil
}
