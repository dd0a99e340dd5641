package table_test

import (
	"fmt"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/pattern"
	"github.com/katalvlaran/boltgroup/table"
	"github.com/katalvlaran/boltgroup/units"
)

func ExampleLoads() {
	pts := []geom.Point{geom.Pt(-50, 50), geom.Pt(50, 50), geom.Pt(50, -50), geom.Pt(-50, -50)}
	set, _ := group.AnalyzeLoads(pts, group.Resultant{Force: geom.V3(0, 0, 400)})

	fmt.Println(table.Loads(set, table.WithPlain()))
	// Output:
	// #  x [mm]  y [mm]  axial [N]  shear x [N]  shear y [N]  |shear| [N]
	// 1  -50.00   50.00     100.00         0.00         0.00         0.00
	// 2   50.00   50.00     100.00         0.00         0.00         0.00
	// 3   50.00  -50.00     100.00         0.00         0.00         0.00
	// 4  -50.00  -50.00     100.00         0.00         0.00         0.00
}

func ExampleCoordinates() {
	pts, _ := pattern.Rectangle(200, 100, 2, 2)

	fmt.Println(table.Coordinates(pts, geom.Pt(0, 0), units.SI(), table.WithPlain()))
	// Output:
	// #   x [mm]  y [mm]  r [mm]
	// 1  -100.00   50.00  111.80
	// 2  -100.00  -50.00  111.80
	// 3   100.00   50.00  111.80
	// 4   100.00  -50.00  111.80
}
