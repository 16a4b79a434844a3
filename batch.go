package clustering

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Job is one dataset of a Batch. Options are applied after the Batch options.
type Job struct {
	Data    [][]float64
	Options []Option
}

// Batch clusters independent datasets concurrently.
// Every job gets its own Clusterer and its own random source seeded from the
// Batch seed and the job index, so results do not depend on scheduling.
type Batch struct {
	seed  uint64
	limit int
	opts  []Option
}

// NewBatch creates a Batch whose jobs share opts.
func NewBatch(seed uint64, opts ...Option) *Batch {
	return &Batch{seed: seed, opts: opts}
}

// SetLimit bounds the number of jobs running at once. n <= 0 means no limit.
func (b *Batch) SetLimit(n int) *Batch {
	b.limit = n
	return b
}

// Run clusters every job and returns the results in job order.
// The first failing job cancels the rest and its error is returned.
func (b *Batch) Run(ctx context.Context, jobs ...Job) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if b.limit > 0 {
		g.SetLimit(b.limit)
	}
	results := make([]*Result, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			opts := append(slices.Clone(b.opts), WithSeed(b.seed+uint64(i)))
			opts = append(opts, job.Options...)
			res, err := Cluster(ctx, job.Data, opts...)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
