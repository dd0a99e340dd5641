// Package group_test provides runnable examples for the analysis engine.
// Each example is a miniature of a real joint check with expected output.
package group_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
)

// ExampleAnalyzeLoads demonstrates the canonical sanity check: a 4-bolt
// square of equal areas under a pure out-of-plane force splits the load
// evenly with no shear anywhere.
func ExampleAnalyzeLoads() {
	// 1) A 100×100 bolt square, centered on the origin.
	pts := []geom.Point{
		{X: -50, Y: 50}, {X: 50, Y: 50},
		{X: 50, Y: -50}, {X: -50, Y: -50},
	}

	// 2) Pure thrust: Fz = 400, everything else zero.
	set, err := group.AnalyzeLoads(pts, group.Resultant{Force: geom.V3(0, 0, 400)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every fastener carries Fz/4 and sees no in-plane shear.
	for i, f := range set.Fasteners {
		fmt.Printf("fastener %d: axial=%.0f shear=%.0f\n", i, f.Axial, f.ShearMag)
	}
	// Output:
	// fastener 0: axial=100 shear=0
	// fastener 1: axial=100 shear=0
	// fastener 2: axial=100 shear=0
	// fastener 3: axial=100 shear=0
}

// ExampleGeometry_Distribute shows the batch-friendly path: compute the
// geometry once, then distribute any number of load cases against it.
func ExampleGeometry_Distribute() {
	pts := []geom.Point{
		{X: -50, Y: 50}, {X: 50, Y: 50},
		{X: 50, Y: -50}, {X: -50, Y: -50},
	}

	// 1) One geometry computation serves every case below.
	geo, err := group.ComputeGeometry(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Case A: pure thrust.
	thrust, _ := geo.Distribute(group.Resultant{Force: geom.V3(0, 0, 400)})
	// 3) Case B: pure torsion about the centroid.
	torque, _ := geo.Distribute(group.Resultant{Moment: geom.V3(0, 0, 20000)})

	fmt.Printf("thrust: axial=%.0f each\n", thrust.Fasteners[0].Axial)
	fmt.Printf("torque: max shear=%.1f\n", torque.MaxShear)
	// Output:
	// thrust: axial=100 each
	// torque: max shear=70.7
}

// ExampleAnalyzePattern returns only the pivot, here the unweighted
// centroid of a rectangular layout.
func ExampleAnalyzePattern() {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 50},
	}
	c, err := group.AnalyzePattern(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("centroid: (%g, %g)\n", c.X, c.Y)
	// Output: centroid: (50, 25)
}

// ExampleAnalyzeLoads_degenerateAxis shows the explicit failure when a
// moment acts about an axis the pattern cannot resist: two fasteners on
// the x-axis have Icx = 0, so any Mx is rejected.
func ExampleAnalyzeLoads_degenerateAxis() {
	pts := []geom.Point{{X: -10, Y: 0}, {X: 10, Y: 0}}

	_, err := group.AnalyzeLoads(pts, group.Resultant{Moment: geom.V3(500, 0, 0)})
	fmt.Println(errors.Is(err, group.ErrDegenerateAxis))
	// Output: true
}
