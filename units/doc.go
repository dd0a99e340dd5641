// Package units names the length and force units an analysis is expressed
// in and converts magnitudes between them.
//
// What:
//
//   - Length and Force enumerate the supported units, each with a display
//     symbol and a conversion factor to the package base (millimetre, newton).
//   - System pairs one length unit with one force unit; the derived moment
//     unit is their product (e.g. N·mm).
//   - ParseLength / ParseForce turn case-file and CLI symbols back into units.
//
// Why:
//
//   - The analysis engine works on plain float64 magnitudes in whatever
//     system the caller chose — consistently. It never converts. Results
//     carry their System so presentation layers can convert for display
//     without re-deriving any physics.
//
// Errors:
//
//   - ErrUnknownUnit: a symbol that names no supported unit.
package units
