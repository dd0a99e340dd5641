package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boltgroup/group"
)

// Run distributes every case against geo concurrently and returns the
// collected load sets, index-aligned with cases. The first failing case
// (or a canceled context) aborts the run; the engine's sentinels survive
// for errors.Is. An empty case list yields an empty result.
func Run(ctx context.Context, geo group.Geometry, cases []Case, opts ...Option) (*Result, error) {
	cfg := newOptions(opts...)

	sets := make([]group.LoadSet, len(cases))
	if len(cases) == 0 {
		return &Result{Geometry: geo, Sets: sets}, nil
	}

	// Workers write to disjoint indices, so no mutex is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(cfg.jobs, len(cases)))

	for i, c := range cases {
		i, c := i, c // per-iteration copies; required under the go1.21 loopvar rules
		g.Go(func() error {
			// Bail out early once a sibling failed or the caller canceled.
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			cfg.emit(Event{Index: i, Name: c.Name, Status: StatusRunning})
			set, err := geo.Distribute(c.Resultant)
			if err != nil {
				cfg.emit(Event{Index: i, Name: c.Name, Status: StatusFailed, Err: err})
				return fmt.Errorf("case %q: %w", c.Name, err)
			}
			sets[i] = set
			cfg.emit(Event{Index: i, Name: c.Name, Status: StatusDone})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	return &Result{
		Geometry: geo,
		Cases:    append([]Case(nil), cases...),
		Sets:     sets,
	}, nil
}
