package clustering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clustering "github.com/yyyoichi/centroid_clustering"
)

func TestBatch(t *testing.T) {
	jobs := []clustering.Job{
		{Data: randomData(1, 30, 2)},
		{Data: randomData(2, 50, 3), Options: []clustering.Option{clustering.WithVariant(clustering.VariantQueen)}},
		{Data: sample, Options: []clustering.Option{clustering.WithVariant(clustering.VariantPAM), clustering.WithK(2)}},
	}
	results, err := clustering.NewBatch(100, clustering.WithEpochs(4)).SetLimit(2).Run(context.Background(), jobs...)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, job := range jobs {
		opts := append([]clustering.Option{clustering.WithEpochs(4), clustering.WithSeed(100 + uint64(i))}, job.Options...)
		want, err := clustering.Cluster(context.Background(), job.Data, opts...)
		require.NoError(t, err)
		assert.Equal(t, want, results[i], "job %d", i)
	}
}

func TestBatchError(t *testing.T) {
	jobs := []clustering.Job{
		{Data: sample},
		{Data: sample, Options: []clustering.Option{clustering.WithVariant(clustering.VariantPAM), clustering.WithK(20)}},
	}
	results, err := clustering.NewBatch(1).Run(context.Background(), jobs...)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, clustering.ErrOutOfRange))
	assert.ErrorContains(t, err, "job 1")
}

func TestBatchJobsShareSeedOption(t *testing.T) {
	shared := []clustering.Option{clustering.WithSeed(7), clustering.WithVariant(clustering.VariantPAM), clustering.WithK(3)}
	jobs := make([]clustering.Job, 6)
	for i := range jobs {
		jobs[i] = clustering.Job{Data: sample, Options: shared}
	}
	results, err := clustering.NewBatch(0).Run(context.Background(), jobs...)
	require.NoError(t, err)

	want, err := clustering.Cluster(context.Background(), sample, shared...)
	require.NoError(t, err)
	for i, res := range results {
		assert.Equal(t, want, res, "job %d", i)
	}
}
