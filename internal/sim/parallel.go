package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same graph under consecutive seeds concurrently.
type Ensemble struct {
	base      *Simulator
	numRuns   int
	seedStart int64
	metrics   func() []Metric
}

// NewEnsemble prepares numRuns runs seeded from seedStart. Metrics are
// stateful, so each run gets a fresh set from newMetrics (which may be nil).
func NewEnsemble(s *Simulator, numRuns int, seedStart int64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{base: s, numRuns: numRuns, seedStart: seedStart, metrics: newMetrics}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		grp.Go(func() error {
			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(i)

			sim := New(e.base.params, e.base.nodes)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					sim.AddMetric(m)
				}
			}

			res, err := sim.Run(ctx, cfgCopy)
			results[i] = res
			return err
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
