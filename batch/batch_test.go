package batch_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boltgroup/batch"
	"github.com/katalvlaran/boltgroup/geom"
	"github.com/katalvlaran/boltgroup/group"
)

const eps = 1e-9

// squareGeometry resolves a four-fastener square, 100 units on a side,
// centred on the origin.
func squareGeometry(t *testing.T) group.Geometry {
	t.Helper()
	pts := []geom.Point{geom.Pt(-50, 50), geom.Pt(50, 50), geom.Pt(50, -50), geom.Pt(-50, -50)}
	geo, err := group.ComputeGeometry(pts)
	require.NoError(t, err, "square geometry must resolve")
	return geo
}

func TestRun_DistributesEveryCase(t *testing.T) {
	geo := squareGeometry(t)
	cases := []batch.Case{
		{Name: "thrust", Resultant: group.Resultant{Force: geom.V3(0, 0, 400)}},
		{Name: "drag", Resultant: group.Resultant{Force: geom.V3(400, 0, 0)}},
		{Name: "torque", Resultant: group.Resultant{Moment: geom.V3(0, 0, 20000)}},
	}

	res, err := batch.Run(context.Background(), geo, cases, batch.WithJobs(2))
	require.NoError(t, err, "all cases are well posed")
	require.Len(t, res.Sets, 3, "one load set per case")
	assert.Equal(t, cases, res.Cases, "cases must be carried into the result")

	for i, f := range res.Sets[0].Fasteners {
		assert.InDelta(t, 100, f.Axial, eps, "thrust fastener %d shares Fz/4", i)
	}
	for i, f := range res.Sets[1].Fasteners {
		assert.InDelta(t, 100, f.Shear.X, eps, "drag fastener %d shares Fx/4", i)
	}
	// Icp = 4·(50²+50²) = 20000, so Mz = 20000 puts Mz·r/Icp = 50·√2 on every bolt.
	assert.InDelta(t, 50*math.Sqrt2, res.Sets[2].MaxShear, eps, "torque max shear")
}

func TestRun_EmptyCases(t *testing.T) {
	geo := squareGeometry(t)

	res, err := batch.Run(context.Background(), geo, nil)
	require.NoError(t, err, "an empty batch is not an error")
	assert.Empty(t, res.Sets, "no sets for no cases")
	assert.Equal(t, geo, res.Geometry, "geometry is carried even when idle")
}

func TestRun_CaseErrorAbortsBatch(t *testing.T) {
	// All fasteners on the x-axis: Icx = 0, so any Mx is degenerate.
	pts := []geom.Point{geom.Pt(-50, 0), geom.Pt(0, 0), geom.Pt(50, 0)}
	geo, err := group.ComputeGeometry(pts)
	require.NoError(t, err, "collinear layout is valid geometry")

	cases := []batch.Case{
		{Name: "fine", Resultant: group.Resultant{Force: geom.V3(0, 0, 300)}},
		{Name: "overturning", Resultant: group.Resultant{Moment: geom.V3(1000, 0, 0)}},
	}

	res, err := batch.Run(context.Background(), geo, cases)
	require.Error(t, err, "the degenerate case must fail the batch")
	assert.Nil(t, res, "no partial result on failure")
	assert.ErrorIs(t, err, group.ErrDegenerateAxis, "engine sentinel must survive wrapping")
	assert.Contains(t, err.Error(), `case "overturning"`, "failing case must be named")
}

func TestRun_EventsBracketEveryCase(t *testing.T) {
	geo := squareGeometry(t)
	cases := make([]batch.Case, 6)
	for i := range cases {
		cases[i] = batch.Case{
			Name:      fmt.Sprintf("case-%d", i),
			Resultant: group.Resultant{Force: geom.V3(0, 0, float64(100 * (i + 1)))},
		}
	}

	var (
		mu     sync.Mutex
		events []batch.Event
	)
	collect := func(ev batch.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	}

	_, err := batch.Run(context.Background(), geo, cases, batch.WithEvents(collect), batch.WithJobs(3))
	require.NoError(t, err, "all cases are well posed")
	require.Len(t, events, 2*len(cases), "running and done event per case")

	byIndex := make(map[int][]batch.Status)
	for _, ev := range events {
		byIndex[ev.Index] = append(byIndex[ev.Index], ev.Status)
		assert.Equal(t, fmt.Sprintf("case-%d", ev.Index), ev.Name, "event names its case")
		assert.NoError(t, ev.Err, "no failures expected")
	}
	for i := range cases {
		assert.Equal(t, []batch.Status{batch.StatusRunning, batch.StatusDone}, byIndex[i],
			"case %d must run before it is done", i)
	}
}

func TestRun_FailureEventCarriesError(t *testing.T) {
	pts := []geom.Point{geom.Pt(-50, 0), geom.Pt(50, 0)}
	geo, err := group.ComputeGeometry(pts)
	require.NoError(t, err, "collinear layout is valid geometry")

	var (
		mu     sync.Mutex
		failed []batch.Event
	)
	collect := func(ev batch.Event) {
		if ev.Status != batch.StatusFailed {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		failed = append(failed, ev)
	}

	cases := []batch.Case{{Name: "bad", Resultant: group.Resultant{Moment: geom.V3(1000, 0, 0)}}}
	_, err = batch.Run(context.Background(), geo, cases, batch.WithEvents(collect))
	require.Error(t, err, "degenerate case must fail")

	require.Len(t, failed, 1, "exactly one failure event")
	assert.ErrorIs(t, failed[0].Err, group.ErrDegenerateAxis, "event carries the case error")
}

func TestRun_SerialJobsKeepPairsAdjacent(t *testing.T) {
	geo := squareGeometry(t)
	cases := make([]batch.Case, 5)
	for i := range cases {
		cases[i] = batch.Case{
			Name:      fmt.Sprintf("case-%d", i),
			Resultant: group.Resultant{Force: geom.V3(0, 0, 100)},
		}
	}

	var (
		mu     sync.Mutex
		events []batch.Event
	)
	_, err := batch.Run(context.Background(), geo, cases,
		batch.WithJobs(1),
		batch.WithEvents(func(ev batch.Event) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, ev)
		}),
	)
	require.NoError(t, err, "all cases are well posed")
	require.Len(t, events, 2*len(cases), "running and done event per case")

	// With a single worker, each case finishes before the next one starts.
	for i := 0; i < len(events); i += 2 {
		assert.Equal(t, batch.StatusRunning, events[i].Status, "event %d must start a case", i)
		assert.Equal(t, batch.StatusDone, events[i+1].Status, "event %d must finish a case", i+1)
		assert.Equal(t, events[i].Index, events[i+1].Index, "pair %d must work one case", i/2)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	geo := squareGeometry(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []batch.Case{{Name: "thrust", Resultant: group.Resultant{Force: geom.V3(0, 0, 400)}}}
	res, err := batch.Run(ctx, geo, cases)
	require.Error(t, err, "a canceled context must abort the run")
	assert.Nil(t, res, "no result on abort")
	assert.ErrorIs(t, err, context.Canceled, "cancellation must be reported as such")
}

func TestWithEvents_NilPanics(t *testing.T) {
	assert.Panics(t, func() { batch.WithEvents(nil) }, "nil sink is a programmer error")
}
