// Package plot renders fastener layouts and load distributions to raster
// images.
//
// What:
//
//   - Pattern — layout preview: fasteners as steel-blue discs, axes through
//     the pivot, a pivot cross, and 1-based index labels.
//   - Loads — one load case: discs shaded red by tensile axial intensity
//     (compressive values clamp to the neutral gray), shear arrows scaled
//     so the largest shear in the set spans a fixed fraction of the
//     canvas, pivot cross.
//   - WritePNG / EncodePNG — persist any image.Image as PNG.
//
// Rendering is pure CPU rasterization (golang.org/x/image/vector): circles
// are four cubic Béziers, lines are filled quads, labels use the bitmap
// face basicfont.Face7x13. The world-to-canvas transform preserves aspect
// ratio and centers the layout inside the margins; the y axis points up.
package plot
