// Package casefile loads analysis case files: TOML documents that describe
// a fastener layout, its areas and pivot, the unit system, and one or more
// named load cases to run against it.
//
// What:
//
//   - Load / Parse — decode and validate a case file; every structural
//     problem (missing field, unknown pattern kind, malformed point or
//     load vector, empty case list) surfaces as a sentinel error naming
//     the offending field.
//   - Document accessors — Points() (generated or explicit layout),
//     System(), GroupOptions(), and Case.Resultant() hand the decoded data
//     to the analysis engine in its own vocabulary.
//
// A minimal file:
//
//	title = "pump flange"
//
//	[units]
//	length = "mm"
//	force  = "N"
//
//	[pattern]
//	kind   = "circle"
//	radius = 120
//	count  = 8
//
//	[[cases]]
//	name  = "thrust"
//	force = [0, 0, 5000]
//
// Pattern kinds: "circle" (radius, count, optional start_angle),
// "rectangle" (x_span, y_span, nx, ny), "points" (explicit [[x, y], ...]).
// The optional [areas] table carries either uniform = <scalar> or
// per_fastener = [<a1>, ...]; the optional [pivot] table overrides the
// computed centroid. Omitted force/moment vectors default to zero.
//
// Why:
//
//   - One declarative file drives the CLI, the batch runner, and the
//     report exporters; field presence is checked against the TOML
//     metadata, so a typo like "raduis" is a load-time error, not a
//     silent zero.
//
// Errors:
//
//   - ErrMissingField — a required field or table is absent.
//   - ErrUnknownKind  — [pattern].kind names no supported generator.
//   - ErrBadPoint     — an explicit point is not an [x, y] pair.
//   - ErrBadVector    — a force/moment is not an [x, y, z] triple.
//   - ErrBadNumber    — a numeric field carries a TOML inf/nan literal.
//   - ErrAreaConflict — both uniform and per_fastener areas given.
//   - ErrNoCases      — the [[cases]] list is missing or empty.
//
// Value-level problems (non-positive radius, bad area values, degenerate
// axes) keep their own sentinels from the pattern and group packages.
package casefile
