package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/boltgroup/internal/version"
	"github.com/katalvlaran/boltgroup/table"
)

var rootCmd = &cobra.Command{
	Use:   "boltgroup",
	Short: "Planar fastener-group load distribution",
	Long: `boltgroup distributes a force/moment resultant over bolt, rivet and
weld groups with the elastic method: direct shares by area, bending by the
rectangular inertias, torsion by the polar inertia.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(patternCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("plain", false, "render tables without borders")
	rootCmd.PersistentFlags().Int("precision", table.DefaultPrecision, "decimal places in rendered tables")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// tableOptions folds the root table flags into renderer options. Plain
// rendering is forced when stdout is not a terminal.
func tableOptions(cmd *cobra.Command) ([]table.Option, error) {
	plain, err := cmd.Root().PersistentFlags().GetBool("plain")
	if err != nil {
		return nil, fmt.Errorf("read plain flag: %w", err)
	}
	precision, err := cmd.Root().PersistentFlags().GetInt("precision")
	if err != nil {
		return nil, fmt.Errorf("read precision flag: %w", err)
	}
	if precision < 0 {
		return nil, fmt.Errorf("invalid --precision %d (must be >= 0)", precision)
	}

	opts := []table.Option{table.WithPrecision(precision)}
	if plain || !isTerminal(os.Stdout) {
		opts = append(opts, table.WithPlain())
	}
	return opts, nil
}

// caseHeading labels one case's output block.
func caseHeading(title, name string) string {
	if title == "" {
		return name
	}
	return title + ": " + name
}
