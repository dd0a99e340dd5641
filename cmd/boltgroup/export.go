package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boltgroup/batch"
	"github.com/katalvlaran/boltgroup/report"
	"github.com/katalvlaran/boltgroup/table"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] results.bgb",
	Short: "Render a saved bundle as tables, a workbook, or a PDF",
	Long: `Export re-opens a bundle written by batch and renders it without
re-running the analysis. With no export flag it prints the per-case
tables; --xlsx and --pdf write report files instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("xlsx", "", "write an xlsx workbook to this path")
	exportCmd.Flags().String("pdf", "", "write a PDF report to this path")
	exportCmd.Flags().Bool("tables", false, "print per-case tables even when exporting")
}

func runExport(cmd *cobra.Command, args []string) error {
	b, err := batch.Open(args[0])
	if err != nil {
		return err
	}

	xlsxPath, err := cmd.Flags().GetString("xlsx")
	if err != nil {
		return fmt.Errorf("read xlsx flag: %w", err)
	}
	pdfPath, err := cmd.Flags().GetString("pdf")
	if err != nil {
		return fmt.Errorf("read pdf flag: %w", err)
	}
	tables, err := cmd.Flags().GetBool("tables")
	if err != nil {
		return fmt.Errorf("read tables flag: %w", err)
	}
	if xlsxPath == "" && pdfPath == "" {
		tables = true
	}

	geo := b.Geometry()
	cases := make([]report.Case, b.Len())
	for i := range cases {
		cases[i] = report.Case{Name: b.Case(i).Name, Set: b.LoadSet(i)}
	}

	out := cmd.OutOrStdout()
	if tables {
		topts, err := tableOptions(cmd)
		if err != nil {
			return err
		}
		heading := color.New(color.FgCyan, color.Bold)
		for _, c := range cases {
			heading.Fprintln(out, caseHeading(b.Title, c.Name))
			fmt.Fprintln(out, table.Loads(c.Set, topts...))
			fmt.Fprintf(out, "max |shear|: %.2f %s\n\n", c.Set.MaxShear, geo.Units.Force.Symbol())
		}
	}

	meta := report.Meta{Title: b.Title}
	if xlsxPath != "" {
		if err := report.SaveXLSX(xlsxPath, meta, geo, cases); err != nil {
			return err
		}
		fmt.Fprintf(out, "workbook written to %s\n", xlsxPath)
	}
	if pdfPath != "" {
		if err := report.SavePDF(pdfPath, meta, geo, cases); err != nil {
			return err
		}
		fmt.Fprintf(out, "report written to %s\n", pdfPath)
	}
	return nil
}
