// SPDX-License-Identifier: MIT
// Package: boltgroup/group
//
// types.go — sentinel errors and the engine's value types.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Entry points wrap sentinels with the method name and offending value.
//   • The engine never panics at runtime; every failure is an explicit error.

package group

import (
	"errors"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/units"
)

// ErrNoFasteners indicates an empty point set; an analysis needs N ≥ 1.
// Usage: if errors.Is(err, ErrNoFasteners) { /* supply a layout */ }.
var ErrNoFasteners = errors.New("group: empty point set")

// ErrAreaCount indicates an explicit area slice whose length differs from
// the point count; per-fastener areas are index-aligned with points.
var ErrAreaCount = errors.New("group: area count mismatch")

// ErrNonPositiveArea indicates an area ≤ 0; every fastener must carry a
// positive load-sharing area.
var ErrNonPositiveArea = errors.New("group: non-positive area")

// ErrNotFinite indicates a NaN or Inf among points, areas, the pivot
// override, or the applied resultant. Rejected at entry so no non-finite
// value can surface in results.
var ErrNotFinite = errors.New("group: non-finite input")

// ErrDegenerateAxis indicates a non-zero moment component whose inertia
// divisor is exactly zero: the pattern is degenerate about that axis and
// cannot resist the moment. Comparison is exact — a vanishingly small
// moment against a zero inertia still fails.
// Usage: if errors.Is(err, ErrDegenerateAxis) { /* fix layout or drop moment */ }.
var ErrDegenerateAxis = errors.New("group: moment about degenerate axis")

// Entry-point method tags used in wrapped errors (no magic literals).
const (
	methodComputeGeometry = "ComputeGeometry"
	methodAnalyzePattern  = "AnalyzePattern"
	methodAnalyzeLoads    = "AnalyzeLoads"
	methodDistribute      = "Distribute"
)

// Resultant is the applied loading: a force and a moment vector, both
// acting at the pattern's pivot, in the unit system declared via
// WithUnits (force, force·length).
type Resultant struct {
	Force  geom.Vec3 // (Fx, Fy, Fz): in-plane x/y, out-of-plane z
	Moment geom.Vec3 // (Mx, My, Mz): bending about x/y, torsion about z
}

// Geometry is the resolved geometric state of a fastener group: everything
// load distribution needs that does not depend on the applied resultant.
// Produced by ComputeGeometry; reusable across any number of load cases.
type Geometry struct {
	// Points are the fastener positions, index-aligned with every
	// per-fastener output the engine produces.
	Points []geom.Point
	// Areas are the resolved per-fastener load-sharing areas (uniform
	// broadcast or the caller's explicit slice), same index alignment.
	Areas []float64
	// TotalArea is ΣA over all fasteners; always > 0.
	TotalArea float64
	// Pivot is the reference point offsets and moment effects are measured
	// about: the area-weighted centroid, or the caller's override verbatim.
	Pivot geom.Point
	// Offsets are rc_i = Points[i] − Pivot.
	Offsets []geom.Point
	// Icx, Icy are the second moments of area about the x and y axes
	// through the pivot; Icp = Icx + Icy is the polar moment.
	Icx, Icy, Icp float64
	// Units is the unit system the magnitudes are expressed in.
	Units units.System
}

// Fastener is the per-fastener analysis result.
type Fastener struct {
	// Position repeats the fastener's original coordinates.
	Position geom.Point
	// Axial is the signed out-of-plane load (+ tension, − compression).
	Axial float64
	// Shear is the in-plane shear load vector.
	Shear geom.Point
	// ShearMag is the Euclidean norm of Shear.
	ShearMag float64
}

// LoadSet is the complete outcome of one load case: the geometry it was
// computed against, the applied resultant, and one Fastener per point.
// Immutable once produced.
type LoadSet struct {
	Geometry  Geometry
	Resultant Resultant
	// Fasteners is index-aligned with Geometry.Points.
	Fasteners []Fastener
	// MaxShear is the largest ShearMag in the set; presentation layers
	// scale shear arrows against it.
	MaxShear float64
}
