// Package batch runs many load cases against one fastener-group geometry
// concurrently and persists the outcome as a versioned bundle file.
//
// What:
//
//   - Run(ctx, geo, cases, opts...) — distributes every case with a bounded
//     errgroup (the geometry stage is computed once and shared; load cases
//     are independent, so the work is embarrassingly parallel). Per-case
//     progress is reported through an optional event callback.
//   - Save / Open — msgpack-encode a Result to disk (schema-versioned,
//     written via a temp file and atomic rename) and read it back. A
//     Bundle reconstructs the unit system, the geometry, and every
//     LoadSet, so exporters can run without re-analyzing.
//
// Why:
//
//   - Flange and base-plate checks routinely sweep dozens of load
//     combinations over a single layout; one geometry pass plus parallel
//     distribution keeps that cheap, and the bundle lets table/plot/report
//     exports happen later or elsewhere.
//
// Options:
//
//   - WithJobs(n) — concurrent worker bound (defaults to GOMAXPROCS).
//   - WithEvents(fn) — per-case progress callback; invoked from worker
//     goroutines, so fn must be safe for concurrent use.
//
// Errors:
//
//   - Run fails on the first case error (context cancellation included),
//     preserving the engine's sentinels for errors.Is.
//   - ErrSchemaMismatch — bundle written by an incompatible version.
//   - ErrBadBundle      — bundle contents are internally inconsistent.
package batch
