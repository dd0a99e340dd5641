package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/plot"
)

// pdfCols are the per-fastener table column widths in mm; they sum to the
// 180 mm content width of an A4 page with 15 mm margins.
var pdfCols = [7]float64{10, 25, 25, 30, 30, 30, 30}

// WritePDF streams a printable report to w: a title block, the pattern
// parameters, and per case a distribution table with an embedded load plot.
func WritePDF(w io.Writer, meta Meta, geo group.Geometry, cases []Case) error {
	pdf, err := buildPDF(meta, geo, cases)
	if err != nil {
		return fmt.Errorf("report: pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: pdf: %w", err)
	}
	return nil
}

// SavePDF writes the report to path.
func SavePDF(path string, meta Meta, geo group.Geometry, cases []Case) error {
	pdf, err := buildPDF(meta, geo, cases)
	if err != nil {
		return fmt.Errorf("report: pdf %s: %w", path, err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: pdf %s: %w", path, err)
	}
	return nil
}

// buildPDF assembles the whole document. gofpdf keeps the first drawing
// error internally; it is surfaced once at the end.
func buildPDF(meta Meta, geo group.Geometry, cases []Case) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.title()))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.date()))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Units: %s", geo.Units)))
	pdf.Ln(10)

	writePattern(pdf, tr, geo)
	for i, c := range cases {
		if err := writeCasePDF(pdf, tr, i, c); err != nil {
			return nil, err
		}
	}

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(meta.Notes), "", "L", false)
	}
	return pdf, pdf.Error()
}

// writePattern prints the resolved geometry summary block.
func writePattern(pdf *gofpdf.Fpdf, tr func(string) string, geo group.Geometry) {
	lu := geo.Units.Length.Symbol()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Pattern")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Fasteners: %d", len(geo.Points)),
		fmt.Sprintf("Total area: %.2f %s", geo.TotalArea, geo.Units.AreaSymbol()),
		fmt.Sprintf("Pivot: (%.2f, %.2f) %s", geo.Pivot.X, geo.Pivot.Y, lu),
		// cp1252 has no U+2074; the exponent is written in ASCII.
		fmt.Sprintf("Icx = %.2f, Icy = %.2f, Icp = %.2f %s^4",
			geo.Icx, geo.Icy, geo.Icp, lu),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(2)
}

// writeCasePDF prints one load case: heading, resultant, the bordered
// per-fastener table, the shear envelope, and the rendered load plot.
func writeCasePDF(pdf *gofpdf.Fpdf, tr func(string) string, i int, c Case) error {
	sys := c.Set.Geometry.Units
	lu := sys.Length.Symbol()
	fu := sys.Force.Symbol()

	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Case %d", i+1)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Case %d: %s", i+1, name)))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	fv := c.Set.Resultant.Force
	mv := c.Set.Resultant.Moment
	pdf.Cell(0, 6, tr(fmt.Sprintf("Force: (%.2f, %.2f, %.2f) %s", fv.X, fv.Y, fv.Z, fu)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Moment: (%.2f, %.2f, %.2f) %s",
		mv.X, mv.Y, mv.Z, sys.MomentSymbol())))
	pdf.Ln(8)

	headers := [7]string{
		"#", "x [" + lu + "]", "y [" + lu + "]",
		"axial [" + fu + "]", "shear x [" + fu + "]", "shear y [" + fu + "]",
		"|shear| [" + fu + "]",
	}
	pdf.SetFont("Helvetica", "B", 10)
	for j, h := range headers {
		pdf.CellFormat(pdfCols[j], 7, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for k, fs := range c.Set.Fasteners {
		cells := [7]string{
			strconv.Itoa(k + 1),
			fmt.Sprintf("%.2f", fs.Position.X),
			fmt.Sprintf("%.2f", fs.Position.Y),
			fmt.Sprintf("%.2f", fs.Axial),
			fmt.Sprintf("%.2f", fs.Shear.X),
			fmt.Sprintf("%.2f", fs.Shear.Y),
			fmt.Sprintf("%.2f", fs.ShearMag),
		}
		for j, cell := range cells {
			align := "R"
			if j == 0 {
				align = "C"
			}
			pdf.CellFormat(pdfCols[j], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Max |shear|: %.2f %s", c.Set.MaxShear, fu)))
	pdf.Ln(8)

	var buf bytes.Buffer
	if err := plot.EncodePNG(&buf, plot.Loads(c.Set, plot.WithSize(640, 480))); err != nil {
		return err
	}
	img := fmt.Sprintf("case-%d", i)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(img, opts, &buf)
	// Flow placement: y is taken from the cursor and a page break is
	// inserted when the plot does not fit.
	pdf.ImageOptions(img, 35, 0, 140, 0, true, opts, 0, "")
	pdf.Ln(6)
	return nil
}
