// SPDX-License-Identifier: MIT
// Package: boltgroup/pattern
//
// doc.go — package overview, contracts, and usage notes.

// Package pattern generates standard fastener layouts as ordered point sets.
//
// What:
//
//   - Circle(radius, count, opts...) — count fasteners evenly spaced on a
//     circle, the first at the top (90°) minus an optional start angle,
//     proceeding clockwise. The classic bolt-circle / flange layout.
//   - Rectangle(xSpan, ySpan, nx, ny) — a rectangular perimeter grid centered
//     on the origin: nx fasteners along the top and bottom edges, ny along
//     the left and right edges, corners shared. Total 2·ny + 2·(nx−2).
//
// Point order is significant everywhere downstream: index i in the returned
// slice is fastener i in every result the analysis engine produces. Both
// generators emit a deterministic, documented order (Circle: clockwise from
// the start position; Rectangle: column by column, left to right, top to
// bottom within a column).
//
// Arbitrary layouts need no generator — hand the analysis engine any
// []geom.Point directly.
//
// Why:
//
//   - Bolt circles and perimeter grids cover the overwhelming majority of
//     real joints; generating them beats transcribing coordinates by hand
//     and guarantees the centroid lands on the origin.
//
// Options:
//
//   - WithStartAngle(deg) rotates the circular layout clockwise by deg
//     degrees. It panics on a non-finite value (programmer error); layout
//     parameters themselves are validated by the generators and surface as
//     sentinel errors.
//
// Errors:
//
//   - ErrBadRadius    — radius not finite or ≤ 0.
//   - ErrBadCount     — fewer than 1 fastener requested.
//   - ErrBadSpan      — span not finite or ≤ 0.
//   - ErrBadDivisions — fewer than 2 fasteners per edge direction.
//
// All errors wrap the sentinel with the generator name and the offending
// value; match with errors.Is.
//
// Complexity: O(n) time and space in the number of generated points.
package pattern
