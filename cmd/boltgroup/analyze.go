package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boltgroup/casefile"
	"github.com/katalvlaran/boltgroup/plot"
	"github.com/katalvlaran/boltgroup/report"
	"github.com/katalvlaran/boltgroup/table"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] case.toml",
	Short: "Distribute the load cases of a case file",
	Long: `Analyze loads a TOML case file, resolves the layout once, distributes
every load case over it, and prints per-fastener load tables. Optional
flags export the same results as a workbook, a printable report, or load
plots.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("case", "", "run only the named case")
	analyzeCmd.Flags().String("xlsx", "", "export a workbook to this path")
	analyzeCmd.Flags().String("pdf", "", "export a printable report to this path")
	analyzeCmd.Flags().String("plot-dir", "", "write one load plot PNG per case into this directory")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	doc, err := casefile.Load(args[0])
	if err != nil {
		return err
	}
	geo, err := doc.Geometry()
	if err != nil {
		return err
	}

	topts, err := tableOptions(cmd)
	if err != nil {
		return err
	}
	only, err := cmd.Flags().GetString("case")
	if err != nil {
		return fmt.Errorf("read case flag: %w", err)
	}

	out := cmd.OutOrStdout()
	heading := color.New(color.FgCyan, color.Bold)

	var cases []report.Case
	for _, c := range doc.Cases {
		if only != "" && c.Name != only {
			continue
		}
		set, err := geo.Distribute(c.Resultant())
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		cases = append(cases, report.Case{Name: c.Name, Set: set})

		heading.Fprintln(out, caseHeading(doc.Title, c.Name))
		fmt.Fprintln(out, table.Loads(set, topts...))
		fmt.Fprintf(out, "max |shear|: %.2f %s\n\n", set.MaxShear, geo.Units.Force.Symbol())
	}
	if len(cases) == 0 {
		if only != "" {
			return fmt.Errorf("case %q not found in %s", only, args[0])
		}
		return fmt.Errorf("no cases in %s", args[0])
	}

	return writeExports(cmd, doc.Title, cases)
}

// writeExports handles the optional --xlsx/--pdf/--plot-dir outputs shared
// with the export command's semantics.
func writeExports(cmd *cobra.Command, title string, cases []report.Case) error {
	out := cmd.OutOrStdout()
	meta := report.Meta{Title: title}
	geo := cases[0].Set.Geometry

	if path, err := cmd.Flags().GetString("xlsx"); err == nil && path != "" {
		if err := report.SaveXLSX(path, meta, geo, cases); err != nil {
			return err
		}
		fmt.Fprintf(out, "workbook written to %s\n", path)
	}
	if path, err := cmd.Flags().GetString("pdf"); err == nil && path != "" {
		if err := report.SavePDF(path, meta, geo, cases); err != nil {
			return err
		}
		fmt.Fprintf(out, "report written to %s\n", path)
	}
	if dir, err := cmd.Flags().GetString("plot-dir"); err == nil && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create plot directory: %w", err)
		}
		for i, c := range cases {
			path := filepath.Join(dir, plotFileName(i, c.Name))
			if err := plot.WritePNG(path, plot.Loads(c.Set)); err != nil {
				return err
			}
			fmt.Fprintf(out, "plot written to %s\n", path)
		}
	}
	return nil
}

// plotFileName derives a safe, unique file name for case i.
func plotFileName(i int, name string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	s = strings.Trim(s, "-")
	if s == "" {
		return fmt.Sprintf("case-%02d.png", i+1)
	}
	return fmt.Sprintf("%02d-%s.png", i+1, s)
}
