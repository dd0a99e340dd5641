package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/boltgroup/group"
)

// inputsSheet is the workbook's first sheet: metadata, unit system, the
// resolved geometry and the fastener table.
const inputsSheet = "Inputs"

// WriteXLSX streams a workbook for the given cases to w. All cases must
// share geo; numeric cells hold raw values, headers carry unit symbols.
func WriteXLSX(w io.Writer, meta Meta, geo group.Geometry, cases []Case) error {
	f, err := buildWorkbook(meta, geo, cases)
	if err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook to path.
func SaveXLSX(path string, meta Meta, geo group.Geometry, cases []Case) error {
	f, err := buildWorkbook(meta, geo, cases)
	if err != nil {
		return fmt.Errorf("report: xlsx %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: xlsx %s: %w", path, err)
	}
	return nil
}

// buildWorkbook assembles the whole workbook in memory: the Inputs sheet
// followed by one sheet per case, in case order.
func buildWorkbook(meta Meta, geo group.Geometry, cases []Case) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", inputsSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	sw := &sheetWriter{f: f}
	writeInputs(sw, bold, meta, geo)
	for i, c := range cases {
		writeCase(sw, bold, caseSheet(i, c.Name), c)
	}
	if sw.err != nil {
		_ = f.Close()
		return nil, sw.err
	}
	return f, nil
}

// writeInputs lays out the metadata block, the geometry summary and the
// per-fastener coordinate table.
func writeInputs(w *sheetWriter, bold int, meta Meta, geo group.Geometry) {
	lu := geo.Units.Length.Symbol()

	w.setRow(inputsSheet, 1, "Title", meta.title())
	w.setRow(inputsSheet, 2, "Project", meta.Project)
	w.setRow(inputsSheet, 3, "Author", meta.Author)
	w.setRow(inputsSheet, 4, "Date", meta.date())
	w.setRow(inputsSheet, 5, "Units", geo.Units.String())
	w.setRow(inputsSheet, 6, "Notes", meta.Notes)

	w.setRow(inputsSheet, 8, "Fasteners", len(geo.Points))
	w.setRow(inputsSheet, 9, "Total area ["+geo.Units.AreaSymbol()+"]", geo.TotalArea)
	w.setRow(inputsSheet, 10, "Pivot x ["+lu+"]", geo.Pivot.X)
	w.setRow(inputsSheet, 11, "Pivot y ["+lu+"]", geo.Pivot.Y)
	w.setRow(inputsSheet, 12, "Icx ["+geo.Units.InertiaSymbol()+"]", geo.Icx)
	w.setRow(inputsSheet, 13, "Icy ["+geo.Units.InertiaSymbol()+"]", geo.Icy)
	w.setRow(inputsSheet, 14, "Icp ["+geo.Units.InertiaSymbol()+"]", geo.Icp)

	const headerRow = 16
	w.setRow(inputsSheet, headerRow,
		"#", "x ["+lu+"]", "y ["+lu+"]", "area ["+geo.Units.AreaSymbol()+"]")
	w.styleRow(inputsSheet, headerRow, 4, bold)
	for i, p := range geo.Points {
		w.setRow(inputsSheet, headerRow+1+i, i+1, p.X, p.Y, geo.Areas[i])
	}
	w.colWidth(inputsSheet, "A", "G", 16)
}

// writeCase lays out one load case: the applied resultant, the shear
// envelope and the per-fastener distribution table.
func writeCase(w *sheetWriter, bold int, sheet string, c Case) {
	w.newSheet(sheet)

	sys := c.Set.Geometry.Units
	lu := sys.Length.Symbol()
	fu := sys.Force.Symbol()

	w.setRow(sheet, 1, "Case", c.Name)
	w.setRow(sheet, 2, "Force ["+fu+"]",
		c.Set.Resultant.Force.X, c.Set.Resultant.Force.Y, c.Set.Resultant.Force.Z)
	w.setRow(sheet, 3, "Moment ["+sys.MomentSymbol()+"]",
		c.Set.Resultant.Moment.X, c.Set.Resultant.Moment.Y, c.Set.Resultant.Moment.Z)
	w.setRow(sheet, 4, "Max |shear| ["+fu+"]", c.Set.MaxShear)

	const headerRow = 6
	w.setRow(sheet, headerRow,
		"#", "x ["+lu+"]", "y ["+lu+"]",
		"axial ["+fu+"]", "shear x ["+fu+"]", "shear y ["+fu+"]", "|shear| ["+fu+"]")
	w.styleRow(sheet, headerRow, 7, bold)
	for i, fs := range c.Set.Fasteners {
		w.setRow(sheet, headerRow+1+i,
			i+1, fs.Position.X, fs.Position.Y,
			fs.Axial, fs.Shear.X, fs.Shear.Y, fs.ShearMag)
	}
	w.colWidth(sheet, "A", "G", 14)
}

// sheetWriter wraps an excelize file with sticky-error cell helpers so the
// layout code above reads as a plain sequence of rows. After the first
// failure every call is a no-op; callers check err once at the end.
type sheetWriter struct {
	f   *excelize.File
	err error
}

// set writes one value at (col, row), both 1-based.
func (w *sheetWriter) set(sheet string, col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(sheet, cell, v)
}

// setRow writes values left to right starting at column A.
func (w *sheetWriter) setRow(sheet string, row int, values ...any) {
	for i, v := range values {
		w.set(sheet, i+1, row, v)
	}
}

// styleRow applies a style to columns 1..cols of a row.
func (w *sheetWriter) styleRow(sheet string, row, cols, style int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, from, to, style)
}

// newSheet appends an empty sheet to the workbook.
func (w *sheetWriter) newSheet(name string) {
	if w.err != nil {
		return
	}
	_, w.err = w.f.NewSheet(name)
}

// colWidth sets the display width of a column range.
func (w *sheetWriter) colWidth(sheet, from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(sheet, from, to, width)
}
