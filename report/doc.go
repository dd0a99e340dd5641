// Package report exports analysis results as XLSX workbooks and PDF
// documents.
//
// What:
//
//   - WriteXLSX / SaveXLSX — one workbook per analysis: an Inputs sheet
//     (metadata, unit system, geometry, fastener table) plus one sheet per
//     load case with the resultant and the per-fastener distribution.
//     Numeric cells hold raw float64 values; headers carry unit symbols.
//   - WritePDF / SavePDF — a printable report: title block, geometry
//     parameters, and per case a results table with an embedded load plot.
//
// Case sheets are named "<n> <case name>" with characters Excel forbids
// replaced and names clipped to 31 runes, so any case list yields a valid
// workbook.
package report
