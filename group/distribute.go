// SPDX-License-Identifier: MIT
// Package: boltgroup/group
//
// distribute.go — load-distribution stage: per-fastener axial and shear.
//
// Contract (superposition per fastener i, offsets rc measured from the pivot):
//   • Paxial_i = Fz·A_i/ΣA + Mx·rcy_i·A_i/Icx − My·rcx_i·A_i/Icy
//   • Pshear_i = (Fx·A_i/ΣA, Fy·A_i/ΣA)
//              + [(0,0,Mz) × (rcx_i, rcy_i, 0)]·A_i/Icp
//   • Sign convention: +Mx tensions fasteners on the +y side of the pivot;
//     +My tensions the −x side (right-hand rule). The opposite signs of the
//     two bending terms are intentional and pinned by hand-checked tests.
//   • A non-zero moment component whose inertia divisor is exactly zero
//     fails with ErrDegenerateAxis. A zero moment component contributes
//     zero even when its divisor is zero, so e.g. pure out-of-plane force
//     on a single fastener succeeds.
//   • Pure; results never contain NaN/Inf.
//
// Complexity: O(n) time, O(n) space.

package group

import (
	"fmt"

	"github.com/katalvlaran/boltgroup/geom"
)

// AnalyzeLoads runs the full pipeline: geometry stage (ComputeGeometry with
// the same options) followed by load distribution. One call per load case;
// callers running many cases against one layout should compute the geometry
// once and use Geometry.Distribute instead.
func AnalyzeLoads(points []geom.Point, res Resultant, opts ...Option) (LoadSet, error) {
	geo, err := ComputeGeometry(points, opts...)
	if err != nil {
		return LoadSet{}, fmt.Errorf("%s: %w", methodAnalyzeLoads, err)
	}

	set, err := geo.Distribute(res)
	if err != nil {
		return LoadSet{}, fmt.Errorf("%s: %w", methodAnalyzeLoads, err)
	}
	return set, nil
}

// Distribute applies the resultant to an already-computed geometry and
// returns the per-fastener loads. The receiver is not modified; the same
// Geometry may be distributed concurrently across load cases.
func (g Geometry) Distribute(res Resultant) (LoadSet, error) {
	// 1) Sanity: a usable Geometry comes from ComputeGeometry.
	n := len(g.Points)
	if n == 0 {
		return LoadSet{}, fmt.Errorf("%s: %w", methodDistribute, ErrNoFasteners)
	}
	if len(g.Areas) != n || len(g.Offsets) != n {
		return LoadSet{}, fmt.Errorf("%s: %d areas, %d offsets for %d fasteners: %w",
			methodDistribute, len(g.Areas), len(g.Offsets), n, ErrAreaCount)
	}
	if g.TotalArea <= 0 {
		return LoadSet{}, fmt.Errorf("%s: total area=%v: %w",
			methodDistribute, g.TotalArea, ErrNonPositiveArea)
	}

	// 2) Reject non-finite loading before any arithmetic.
	if !res.Force.IsFinite() || !res.Moment.IsFinite() {
		return LoadSet{}, fmt.Errorf("%s: force=%v, moment=%v: %w",
			methodDistribute, res.Force, res.Moment, ErrNotFinite)
	}

	// 3) Reject moments about degenerate axes (exact zero-inertia check).
	if res.Moment.X != 0 && g.Icx == 0 {
		return LoadSet{}, fmt.Errorf("%s: Mx=%v with Icx=0: %w",
			methodDistribute, res.Moment.X, ErrDegenerateAxis)
	}
	if res.Moment.Y != 0 && g.Icy == 0 {
		return LoadSet{}, fmt.Errorf("%s: My=%v with Icy=0: %w",
			methodDistribute, res.Moment.Y, ErrDegenerateAxis)
	}
	if res.Moment.Z != 0 && g.Icp == 0 {
		return LoadSet{}, fmt.Errorf("%s: Mz=%v with Icp=0: %w",
			methodDistribute, res.Moment.Z, ErrDegenerateAxis)
	}

	// 4) Superpose the independent contributions per fastener.
	fasteners := make([]Fastener, n)
	var maxShear float64
	for i := 0; i < n; i++ {
		share := g.Areas[i] / g.TotalArea // direct-share fraction A_i/ΣA
		rc := g.Offsets[i]

		// 4a) Axial: direct Fz share plus the two bending terms. Zero
		//     moment components are skipped, so a zero divisor never
		//     enters the arithmetic.
		axial := res.Force.Z * share
		if res.Moment.X != 0 {
			axial += res.Moment.X * rc.Y * g.Areas[i] / g.Icx
		}
		if res.Moment.Y != 0 {
			axial -= res.Moment.Y * rc.X * g.Areas[i] / g.Icy
		}

		// 4b) Shear: direct in-plane share plus the torsional term, the
		//     pure-Mz moment vector crossed with the offset and scaled by
		//     A_i/Icp; perpendicular to the offset, magnitude Mz·|rc|·A_i/Icp.
		shear := geom.Pt(res.Force.X*share, res.Force.Y*share)
		if res.Moment.Z != 0 {
			torsion := geom.V3(0, 0, res.Moment.Z).Cross(geom.V3(rc.X, rc.Y, 0))
			shear = shear.Add(torsion.XY().Mul(g.Areas[i] / g.Icp))
		}

		mag := shear.Length()
		if mag > maxShear {
			maxShear = mag
		}
		fasteners[i] = Fastener{
			Position: g.Points[i],
			Axial:    axial,
			Shear:    shear,
			ShearMag: mag,
		}
	}

	return LoadSet{
		Geometry:  g,
		Resultant: res,
		Fasteners: fasteners,
		MaxShear:  maxShear,
	}, nil
}
