// SPDX-License-Identifier: MIT
// Package: boltgroup/pattern
//
// rectangle.go — Rectangle(xSpan, ySpan, nx, ny) perimeter-grid generator.
//
// Contract:
//   • xSpan and ySpan must be finite and > 0 (else ErrBadSpan).
//   • nx ≥ 2 and ny ≥ 2 (else ErrBadDivisions): the perimeter needs at
//     least its four corners.
//   • nx fasteners sit evenly spaced along the top edge and along the
//     bottom edge; ny along the left edge and along the right edge.
//     Corners are shared, never duplicated: total = 2·ny + 2·(nx−2).
//   • The grid is centered on the origin, so the unweighted centroid of
//     the result is (0, 0) up to floating-point roundoff.
//
// Determinism:
//   • Stable order: column by column from x = −xSpan/2 to x = +xSpan/2;
//     within a column, top to bottom. Edge columns carry ny fasteners,
//     interior columns only their top and bottom edge fasteners.
//
// Complexity: O(nx + ny) time and space.

package pattern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boltgroup/geom"
)

// Rectangle returns fastener positions on the perimeter of an origin-centered
// xSpan × ySpan rectangle: nx per horizontal edge, ny per vertical edge,
// corners shared. See the file header for the exact ordering contract.
func Rectangle(xSpan, ySpan float64, nx, ny int) ([]geom.Point, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if math.IsNaN(xSpan) || math.IsInf(xSpan, 0) || xSpan <= 0 {
		return nil, fmt.Errorf("%s: xSpan=%v (must be finite and > 0): %w",
			methodRectangle, xSpan, ErrBadSpan)
	}
	if math.IsNaN(ySpan) || math.IsInf(ySpan, 0) || ySpan <= 0 {
		return nil, fmt.Errorf("%s: ySpan=%v (must be finite and > 0): %w",
			methodRectangle, ySpan, ErrBadSpan)
	}
	if nx < minDivisions || ny < minDivisions {
		return nil, fmt.Errorf("%s: nx=%d, ny=%d (each must be ≥ %d): %w",
			methodRectangle, nx, ny, minDivisions, ErrBadDivisions)
	}

	// 2) Precompute half-spans and pitches; all placement below is arithmetic.
	hx := xSpan / 2                // half-span along x
	hy := ySpan / 2                // half-span along y
	dx := xSpan / float64(nx-1)    // horizontal pitch between columns
	dy := ySpan / float64(ny-1)    // vertical pitch within edge columns
	total := 2*ny + 2*(nx-2)       // perimeter population, corners shared
	pts := make([]geom.Point, 0, total)

	// 3) Walk columns left → right; fill each column top → bottom.
	for c := 0; c < nx; c++ {
		x := -hx + float64(c)*dx

		// 3a) Edge columns (leftmost, rightmost) carry the full vertical run.
		if c == 0 || c == nx-1 {
			for r := 0; r < ny; r++ {
				pts = append(pts, geom.Pt(x, hy-float64(r)*dy))
			}
			continue
		}

		// 3b) Interior columns contribute only their top and bottom fasteners.
		pts = append(pts, geom.Pt(x, hy), geom.Pt(x, -hy))
	}

	return pts, nil
}
