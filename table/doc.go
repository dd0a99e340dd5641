// Package table renders fastener layouts and per-fastener load results as
// terminal tables.
//
// Two modes share one cell layout:
//
//   - styled (default) — bordered lipgloss table with bold right-aligned
//     headers, for interactive terminals.
//   - plain (WithPlain) — whitespace-aligned text with no border, for
//     pipes, logs and diff-friendly captures.
//
// Numeric cells are grouped and rounded per locale (WithLocale,
// WithPrecision); values that round to zero at the chosen precision render
// unsigned. Column headers carry the unit symbols of the rendered system.
package table
