// Package boltgroup analyzes planar fastener groups — bolts, rivets, or
// weld points — under a combined force/moment resultant, using the classic
// linear-elastic superposition method.
//
// 🚀 What is boltgroup?
//
//	A library plus tooling that answers one question: given a pattern of
//	fasteners and a load applied at its centroid, how much does each
//	fastener carry? It covers:
//	  • Pattern generation: circular and rectangular-perimeter layouts
//	  • Centroid & inertia: area-weighted centroid, Icx/Icy/Icp about any pivot
//	  • Load distribution: per-fastener axial load and in-plane shear vector
//	  • Presentation: terminal tables, PNG plots, XLSX/PDF reports
//	  • Tooling: TOML case files, a parallel batch runner, a JSON API, a CLI
//
// ✨ Why choose boltgroup?
//
//   - Pure analysis core — deterministic functions, no hidden state
//   - Explicit errors — sentinel errors for every invalid input, no NaNs
//   - Unit-aware — results carry their unit system; conversion stays at the edge
//   - Extensible — presentation layers consume plain numeric results
//
// Under the hood, everything is organized per concern:
//
//	geom/     — 2D points and 3D vectors shared by all packages
//	units/    — length/force unit symbols and conversion factors
//	pattern/  — circle and rectangle fastener layout generators
//	group/    — centroid/inertia geometry and elastic load distribution
//	casefile/ — TOML analysis-case documents
//	batch/    — concurrent multi-case runs and result bundles
//	table/    — terminal rendering of result sets
//	plot/     — PNG rendering of layouts, shear arrows, axial intensity
//	report/   — XLSX workbooks and PDF reports
//	server/   — JSON API over the two analysis entry points
//
// Quick ASCII example:
//
//	      ●   ●
//	    ●   +   ●      a 6-bolt circular flange; "+" marks the centroid
//	      ●   ●        where the thrust and torque resultant acts.
//
// Dive into examples/ for runnable scenarios and cmd/boltgroup for the CLI.
//
//	go get github.com/katalvlaran/boltgroup
package boltgroup
