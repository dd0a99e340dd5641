package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/pattern"
	"github.com/katalvlaran/boltgroup/plot"
	"github.com/katalvlaran/boltgroup/table"
	"github.com/katalvlaran/boltgroup/units"
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Preview layout generators",
	Long: `Pattern renders a generated layout as a coordinate table (with each
fastener's distance from the computed centroid) and, optionally, a PNG
diagram. Coordinates are unitless here; pick units when you analyze.`,
}

var patternCircleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Fasteners spaced evenly on a circle",
	Args:  cobra.NoArgs,
	RunE:  runPatternCircle,
}

var patternRectangleCmd = &cobra.Command{
	Use:   "rectangle",
	Short: "Fasteners on a rectangle perimeter",
	Args:  cobra.NoArgs,
	RunE:  runPatternRectangle,
}

func init() {
	patternCircleCmd.Flags().Float64("radius", 100, "circle radius")
	patternCircleCmd.Flags().Int("count", 8, "number of fasteners")
	patternCircleCmd.Flags().Float64("start-angle", 0, "clockwise offset of the first fastener, degrees")
	patternCircleCmd.Flags().String("plot", "", "write a layout PNG to this path")

	patternRectangleCmd.Flags().Float64("x-span", 200, "horizontal span")
	patternRectangleCmd.Flags().Float64("y-span", 100, "vertical span")
	patternRectangleCmd.Flags().Int("nx", 4, "fasteners along the top and bottom edges")
	patternRectangleCmd.Flags().Int("ny", 3, "fasteners along the left and right edges")
	patternRectangleCmd.Flags().String("plot", "", "write a layout PNG to this path")

	patternCmd.AddCommand(patternCircleCmd)
	patternCmd.AddCommand(patternRectangleCmd)
}

func runPatternCircle(cmd *cobra.Command, _ []string) error {
	radius, err := cmd.Flags().GetFloat64("radius")
	if err != nil {
		return fmt.Errorf("read radius flag: %w", err)
	}
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return fmt.Errorf("read count flag: %w", err)
	}
	startDeg, err := cmd.Flags().GetFloat64("start-angle")
	if err != nil {
		return fmt.Errorf("read start-angle flag: %w", err)
	}

	pts, err := pattern.Circle(radius, count, pattern.WithStartAngle(startDeg))
	if err != nil {
		return err
	}
	return renderPattern(cmd, pts)
}

func runPatternRectangle(cmd *cobra.Command, _ []string) error {
	xSpan, err := cmd.Flags().GetFloat64("x-span")
	if err != nil {
		return fmt.Errorf("read x-span flag: %w", err)
	}
	ySpan, err := cmd.Flags().GetFloat64("y-span")
	if err != nil {
		return fmt.Errorf("read y-span flag: %w", err)
	}
	nx, err := cmd.Flags().GetInt("nx")
	if err != nil {
		return fmt.Errorf("read nx flag: %w", err)
	}
	ny, err := cmd.Flags().GetInt("ny")
	if err != nil {
		return fmt.Errorf("read ny flag: %w", err)
	}

	pts, err := pattern.Rectangle(xSpan, ySpan, nx, ny)
	if err != nil {
		return err
	}
	return renderPattern(cmd, pts)
}

// renderPattern prints the coordinate table and writes the optional plot.
func renderPattern(cmd *cobra.Command, pts []geom.Point) error {
	pivot, err := group.AnalyzePattern(pts)
	if err != nil {
		return err
	}
	topts, err := tableOptions(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table.Coordinates(pts, pivot, units.SI(), topts...))
	fmt.Fprintf(out, "%d fasteners, pivot (%.2f, %.2f)\n", len(pts), pivot.X, pivot.Y)

	if path, err := cmd.Flags().GetString("plot"); err == nil && path != "" {
		if err := plot.WritePNG(path, plot.Pattern(pts, pivot)); err != nil {
			return err
		}
		fmt.Fprintf(out, "plot written to %s\n", path)
	}
	return nil
}
