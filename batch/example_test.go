package batch_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/boltgroup/batch"
	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/pattern"
)

func ExampleRun() {
	pts, _ := pattern.Circle(100, 6)
	geo, _ := group.ComputeGeometry(pts)

	cases := []batch.Case{
		{Name: "thrust", Resultant: group.Resultant{Force: geom.V3(0, 0, 5000)}},
		{Name: "torque", Resultant: group.Resultant{Moment: geom.V3(0, 0, 30000)}},
	}

	// A single worker keeps the event stream in submission order.
	res, _ := batch.Run(context.Background(), geo, cases,
		batch.WithJobs(1),
		batch.WithEvents(func(ev batch.Event) {
			if ev.Status == batch.StatusDone {
				fmt.Printf("%s: done\n", ev.Name)
			}
		}),
	)

	for i, c := range res.Cases {
		fmt.Printf("%s: max shear %.2f\n", c.Name, res.Sets[i].MaxShear)
	}
	// Output:
	// thrust: done
	// torque: done
	// thrust: max shear 0.00
	// torque: max shear 50.00
}

func ExampleSave() {
	pts, _ := pattern.Circle(100, 4)
	geo, _ := group.ComputeGeometry(pts)
	res, _ := batch.Run(context.Background(), geo, []batch.Case{
		{Name: "thrust", Resultant: group.Resultant{Force: geom.V3(0, 0, 400)}},
	})

	dir, _ := os.MkdirTemp("", "boltgroup")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "thrust.bgb")

	_ = batch.Save(path, "test rig", res)
	b, _ := batch.Open(path)

	fmt.Printf("%s: %d fasteners, %d case(s)\n", b.Title, len(b.Geometry().Points), b.Len())
	fmt.Printf("axial on bolt 0: %g\n", b.LoadSet(0).Fasteners[0].Axial)
	// Output:
	// test rig: 4 fasteners, 1 case(s)
	// axial on bolt 0: 100
}
