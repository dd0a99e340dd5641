// SPDX-License-Identifier: MIT
// Package: boltgroup/group
//
// geometry.go — centroid/inertia stage: pivot, offsets, second moments.
//
// Contract:
//   • N ≥ 1 points, every coordinate finite (else ErrNoFasteners / ErrNotFinite).
//   • Areas resolve to an N-length positive slice: the uniform value
//     broadcast, or the caller's explicit slice checked for length and sign.
//   • Pivot: area-weighted centroid Σ(p_i·A_i)/ΣA_i, or the caller's
//     override taken verbatim (no weighting performed).
//   • Icx = Σ(rcy_i²·A_i), Icy = Σ(rcx_i²·A_i), Icp = Icx + Icy.
//     Zero inertias are legal here; distribution rejects them only when a
//     non-zero moment component divides by them.
//   • Pure function of its inputs; the returned Geometry owns its slices.
//
// Complexity: O(n) time, O(n) space.

package group

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boltgroup/geom"
)

// ComputeGeometry resolves the geometric state of a fastener group: the
// pivot, per-fastener offsets from it, resolved areas, and the second
// moments of area about the pivot axes. The result is reusable across any
// number of Distribute calls.
func ComputeGeometry(points []geom.Point, opts ...Option) (Geometry, error) {
	cfg := newOptions(opts...)

	// 1) Validate the point set (fail fast; no partial work).
	if err := validatePoints(methodComputeGeometry, points); err != nil {
		return Geometry{}, err
	}

	// 2) Resolve areas to one positive value per fastener.
	areas, total, err := resolveAreas(methodComputeGeometry, cfg, len(points))
	if err != nil {
		return Geometry{}, err
	}

	// 3) Resolve the pivot: caller override verbatim, else weighted centroid.
	pivot, err := resolvePivot(methodComputeGeometry, cfg, points, areas, total)
	if err != nil {
		return Geometry{}, err
	}

	// 4) Offsets and second moments about the pivot in one pass.
	offsets := make([]geom.Point, len(points))
	var icx, icy float64
	for i, p := range points {
		rc := p.Sub(pivot)
		offsets[i] = rc
		icx += rc.Y * rc.Y * areas[i]
		icy += rc.X * rc.X * areas[i]
	}

	// 5) Assemble the result; Points is an owned copy, never the caller's slice.
	return Geometry{
		Points:    append([]geom.Point(nil), points...),
		Areas:     areas,
		TotalArea: total,
		Pivot:     pivot,
		Offsets:   offsets,
		Icx:       icx,
		Icy:       icy,
		Icp:       icx + icy,
		Units:     cfg.units,
	}, nil
}

// AnalyzePattern is the lean variant for callers that need no inertias
// (layout previews, centroid markers): it returns only the pivot, i.e. the
// area-weighted centroid, or the override verbatim when WithPivot is given.
func AnalyzePattern(points []geom.Point, opts ...Option) (geom.Point, error) {
	cfg := newOptions(opts...)

	if err := validatePoints(methodAnalyzePattern, points); err != nil {
		return geom.Point{}, err
	}
	areas, total, err := resolveAreas(methodAnalyzePattern, cfg, len(points))
	if err != nil {
		return geom.Point{}, err
	}

	return resolvePivot(methodAnalyzePattern, cfg, points, areas, total)
}

// validatePoints rejects empty sets and non-finite coordinates.
func validatePoints(method string, points []geom.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoFasteners)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%s: point %d=(%v, %v): %w", method, i, p.X, p.Y, ErrNotFinite)
		}
	}
	return nil
}

// resolveAreas broadcasts the uniform area or validates the explicit slice,
// returning an owned N-length slice and its sum ΣA (always > 0 on success).
func resolveAreas(method string, cfg Options, n int) ([]float64, float64, error) {
	// Broadcast path: one uniform value for every fastener.
	if cfg.areas == nil {
		a := cfg.uniform
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, 0, fmt.Errorf("%s: uniform area=%v: %w", method, a, ErrNotFinite)
		}
		if a <= 0 {
			return nil, 0, fmt.Errorf("%s: uniform area=%v: %w", method, a, ErrNonPositiveArea)
		}
		areas := make([]float64, n)
		for i := range areas {
			areas[i] = a
		}
		return areas, a * float64(n), nil
	}

	// Explicit path: length must match, every entry finite and positive.
	if len(cfg.areas) != n {
		return nil, 0, fmt.Errorf("%s: %d areas for %d fasteners: %w",
			method, len(cfg.areas), n, ErrAreaCount)
	}
	areas := append([]float64(nil), cfg.areas...)
	var total float64
	for i, a := range areas {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, 0, fmt.Errorf("%s: area %d=%v: %w", method, i, a, ErrNotFinite)
		}
		if a <= 0 {
			return nil, 0, fmt.Errorf("%s: area %d=%v: %w", method, i, a, ErrNonPositiveArea)
		}
		total += a
	}
	return areas, total, nil
}

// resolvePivot returns the caller's override verbatim, or the area-weighted
// centroid Σ(p_i·A_i)/ΣA_i.
func resolvePivot(method string, cfg Options, points []geom.Point, areas []float64, total float64) (geom.Point, error) {
	if cfg.pivot != nil {
		p := *cfg.pivot
		if !p.IsFinite() {
			return geom.Point{}, fmt.Errorf("%s: pivot=(%v, %v): %w", method, p.X, p.Y, ErrNotFinite)
		}
		return p, nil
	}

	var c geom.Point
	for i, p := range points {
		c = c.Add(p.Mul(areas[i]))
	}
	return c.Mul(1 / total), nil
}
