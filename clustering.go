package clustering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/yyyoichi/centroid_clustering/internal/centroid"
	"github.com/yyyoichi/centroid_clustering/internal/distance"
	"github.com/yyyoichi/centroid_clustering/internal/kmeans"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnsupportedVariant = errors.New("unsupported clustering variant")
	ErrOutOfRange         = centroid.ErrOutOfRange
	ErrUnsupportedMetric  = distance.ErrUnsupportedMetric
)

type (
	// Bound is the sampling range of one dimension.
	Bound = centroid.Bound
	// Boundaries holds one Bound per dimension.
	Boundaries = centroid.Boundaries
	// Metric is a distance metric between a centroid and a point.
	Metric = distance.Metric
)

const MetricManhattan = distance.MetricManhattan

// ParseMetric resolves a metric name. Unknown names resolve to MetricManhattan
// together with an error wrapping ErrUnsupportedMetric.
func ParseMetric(name string) (Metric, error) { return distance.ParseMetric(name) }

// Result is the outcome of one clustering run.
type Result struct {
	// Labels holds the cluster index in [0, k) of every input point, in input order.
	Labels []int
	// Centroids holds the k final centroids. For PAM they are copies of data points.
	Centroids [][]float64
	// Cost is the sum of distances from every point to its own centroid.
	Cost float64
	// EpochCosts is the cost of the candidate explored in each PAM epoch. Nil for other variants.
	EpochCosts []float64
	// Warnings lists recoverable problems, such as an unsupported metric.
	Warnings []error
}

// Cluster groups data into clusters with the specified options.
// This is a convenience function that creates a Clusterer and calls its Run method.
func Cluster(ctx context.Context, data [][]float64, opts ...Option) (*Result, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Run(ctx, data)
}

// Clusterer holds the configuration of a clustering run.
// A Clusterer must not run concurrently with itself because it owns its random source.
type Clusterer struct {
	k, epochs  int
	variant    Variant
	metric     Metric
	metricName string
	boundaries Boundaries
	centroids  [][]float64
	src        rand.Source
	logger     *slog.Logger
}

// New initializes a Clusterer. For default values, refer to the init method.
func New(opts ...Option) (*Clusterer, error) {
	c := new(Clusterer)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Run clusters data.
//
// Process:
//  1. Validates the shape of data and of any explicit centroids or boundaries.
//  2. Builds the starting centroids: explicit ones verbatim, otherwise uniform
//     samples inside the boundaries (Lloyd, Queen) or k distinct data points (PAM).
//  3. Runs the selected variant for exactly the configured number of epochs.
//
// Input slices are never modified and never aliased by the Result.
func (c *Clusterer) Run(ctx context.Context, data [][]float64) (*Result, error) {
	dim, err := centroid.Dim(data)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}

	switch c.variant {
	case VariantLloyd, VariantQueen:
		centroids, err := c.meanCentroids(data, dim)
		if err != nil {
			return nil, err
		}
		res := new(Result)
		dist := c.distance(ctx, res)
		run := kmeans.Lloyd
		if c.variant == VariantQueen {
			run = kmeans.Queen
		}
		labels, err := run(ctx, dist, data, centroids, c.epochs)
		if err != nil {
			return nil, err
		}
		res.Labels = labels
		res.Centroids = centroids
		res.Cost = kmeans.Cost(dist, data, centroids, labels)
		return res, nil

	case VariantPAM:
		medoids, err := c.medoids(data, dim)
		if err != nil {
			return nil, err
		}
		res := new(Result)
		dist := c.distance(ctx, res)
		best, err := kmeans.PAM(ctx, dist, data, medoids, c.epochs, c.src)
		if err != nil {
			return nil, err
		}
		res.Labels = best.Labels
		res.Centroids = make([][]float64, len(best.Medoids))
		for j, idx := range best.Medoids {
			res.Centroids[j] = append([]float64(nil), data[idx]...)
		}
		res.Cost = best.Cost
		res.EpochCosts = best.EpochCosts
		return res, nil

	default:
		return nil, fmt.Errorf("%w:%w: %v", ErrInvalidArgument, ErrUnsupportedVariant, c.variant)
	}
}

func (c *Clusterer) init(opts ...Option) error {
	c.k = 3
	c.epochs = 10
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.src == nil {
		c.src = newSource(rand.Uint64())
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return nil
}

// distance resolves the metric. An unsupported one is logged, recorded in res
// and replaced by Manhattan.
func (c *Clusterer) distance(ctx context.Context, res *Result) distance.Func {
	fn, err := distance.Provider(c.metric)
	if err == nil && c.metricName != "" {
		_, err = distance.ParseMetric(c.metricName)
	}
	if err != nil {
		name := c.metricName
		if name == "" {
			name = c.metric.String()
		}
		c.logger.WarnContext(ctx, "unsupported metric name; falling back to Manhattan",
			slog.String("metric", name))
		res.Warnings = append(res.Warnings, err)
	}
	return fn
}

// meanCentroids returns a working copy of the starting centroids for Lloyd and Queen.
func (c *Clusterer) meanCentroids(data [][]float64, dim int) ([][]float64, error) {
	if c.centroids != nil {
		if err := c.checkCentroids(dim); err != nil {
			return nil, err
		}
		return centroid.Copy(c.centroids), nil
	}
	b := c.boundaries
	if b == nil {
		b = centroid.DeriveBoundaries(data)
	} else if err := b.Validate(dim); err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	return centroid.Uniform(b, c.k, c.src), nil
}

// medoids returns the data indices of the starting medoids for PAM.
func (c *Clusterer) medoids(data [][]float64, dim int) ([]int, error) {
	if c.k > len(data) {
		return nil, fmt.Errorf("%w:%w: k=%d exceeds %d data points", ErrInvalidArgument, ErrOutOfRange, c.k, len(data))
	}
	if c.centroids != nil {
		if err := c.checkCentroids(dim); err != nil {
			return nil, err
		}
		idxs, err := centroid.MedoidIndices(data, c.centroids)
		if err != nil {
			return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
		}
		return idxs, nil
	}
	idxs, err := centroid.SampleMedoids(data, c.k, c.src)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	return idxs, nil
}

func (c *Clusterer) checkCentroids(dim int) error {
	if len(c.centroids) != c.k {
		return fmt.Errorf("%w: %d centroids given for k=%d", ErrInvalidArgument, len(c.centroids), c.k)
	}
	for j, p := range c.centroids {
		if len(p) != dim {
			return fmt.Errorf("%w: centroid %d has %d dimensions, want %d", ErrInvalidArgument, j, len(p), dim)
		}
	}
	return nil
}
