// SPDX-License-Identifier: MIT
// Package: boltgroup/group
//
// doc.go — package overview, contracts, and usage notes.

// Package group is the fastener-group analysis engine: it distributes a
// force/moment resultant applied at a pattern's pivot into per-fastener
// axial and in-plane shear loads, using the linear-elastic superposition
// ("elastic method") standard in bolt, rivet, and weld-group design.
//
// What:
//
//   - ComputeGeometry(points, opts...) — area-weighted centroid (or caller
//     pivot), per-fastener offsets, and the second moments of area
//     Icx = Σ(rcy²·A), Icy = Σ(rcx²·A), Icp = Icx + Icy.
//   - AnalyzePattern(points, opts...) — lean variant returning only the
//     pivot, for callers that need no inertias (layout previews, plots).
//   - AnalyzeLoads(points, res, opts...) — full pipeline: geometry stage
//     plus load distribution, returning a LoadSet.
//   - Geometry.Distribute(res) — reuses one computed geometry across many
//     load cases (batch analyses are embarrassingly parallel over cases).
//
// The distribution superposes independent contributions per fastener i:
//
//	Paxial_i = Fz·A_i/ΣA + Mx·rcy_i·A_i/Icx − My·rcx_i·A_i/Icy
//	Pshear_i = (Fx·A_i/ΣA, Fy·A_i/ΣA) + [(0,0,Mz) × (rcx_i, rcy_i, 0)]·A_i/Icp
//
// The opposite signs of the Mx and My bending terms follow the right-hand
// rule: +Mx tensions fasteners on the +y side of the pivot, +My tensions
// those on the −x side. The Mz term is the classic torsional-shear rule,
// an in-plane vector perpendicular to the offset with magnitude
// proportional to radial distance.
//
// Why:
//
//   - One pure, deterministic engine with no I/O and no state. Everything
//     else in the module (tables, plots, reports, server, CLI) only
//     formats what this package computes.
//
// Options:
//
//   - WithUniformArea(a) — one rigid load-sharing area for every fastener
//     (default 1, which weights all fasteners equally).
//   - WithAreas(areas) — explicit per-fastener areas; length must equal
//     the point count.
//   - WithPivot(p) — measure offsets and moments about p instead of the
//     computed centroid (e.g. a bolt-group's geometric center).
//   - WithUnits(sys) — declare the unit system the magnitudes are
//     expressed in; carried through results so presentation layers can
//     convert without re-deriving physics. Default: millimetre/newton.
//
// Errors:
//
//   - ErrNoFasteners     — empty point set.
//   - ErrAreaCount       — explicit area slice length ≠ point count.
//   - ErrNonPositiveArea — an area ≤ 0.
//   - ErrNotFinite       — NaN/Inf in points, areas, pivot, or resultant.
//   - ErrDegenerateAxis  — non-zero moment component whose inertia divisor
//     is exactly zero (pattern degenerate about that axis). A zero moment
//     component contributes zero even when its divisor is zero, so pure
//     out-of-plane force on a single fastener still succeeds.
//
// All failures are immediate and local to the call; nothing is retried and
// no NaN/Inf ever reaches a result.
//
// Complexity: every entry point is O(n) time, O(n) space in the number of
// fasteners.
package group
