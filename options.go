package clustering

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/yyyoichi/centroid_clustering/internal/centroid"
	"github.com/yyyoichi/centroid_clustering/internal/distance"
)

type Option func(*Clusterer) error

// WithK sets the number of clusters. The default is 3.
func WithK(k int) Option {
	return func(c *Clusterer) error {
		if k < 1 {
			return fmt.Errorf("%w: k must be positive, got %d", ErrInvalidArgument, k)
		}
		c.k = k
		return nil
	}
}

// WithEpochs sets how many full passes the algorithm makes. The default is 10.
// The algorithms never stop early.
func WithEpochs(epochs int) Option {
	return func(c *Clusterer) error {
		if epochs < 1 {
			return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidArgument, epochs)
		}
		c.epochs = epochs
		return nil
	}
}

// WithVariant selects the algorithm. The default is VariantLloyd.
func WithVariant(v Variant) Option {
	return func(c *Clusterer) error {
		switch v {
		case VariantLloyd, VariantQueen, VariantPAM:
			c.variant = v
			return nil
		default:
			return fmt.Errorf("%w:%w: %v", ErrInvalidArgument, ErrUnsupportedVariant, v)
		}
	}
}

// WithVariantName selects the algorithm by name ("lloyd", "queen" or "pam").
func WithVariantName(name string) Option {
	return func(c *Clusterer) error {
		v, err := ParseVariant(name)
		if err != nil {
			return err
		}
		c.variant = v
		return nil
	}
}

// WithMetric selects the distance metric. The default is MetricManhattan.
// An unknown metric does not fail; Run warns and uses Manhattan instead.
func WithMetric(m Metric) Option {
	return func(c *Clusterer) error {
		c.metric = m
		c.metricName = ""
		return nil
	}
}

// WithMetricName selects the distance metric by name.
// An unknown name does not fail; Run warns and uses Manhattan instead.
func WithMetricName(name string) Option {
	return func(c *Clusterer) error {
		m, _ := distance.ParseMetric(name)
		c.metric = m
		c.metricName = name
		return nil
	}
}

// WithBoundaries fixes the per-dimension range used to draw random centroids
// for Lloyd and Queen. Without it the range is derived from the data.
// PAM ignores it.
func WithBoundaries(b Boundaries) Option {
	return func(c *Clusterer) error {
		c.boundaries = append(Boundaries(nil), b...)
		return nil
	}
}

// WithCentroids sets the starting centroids instead of drawing them at random.
// There must be exactly k of them, each with the dimension of the data.
// For PAM every centroid must be a data point.
func WithCentroids(centroids [][]float64) Option {
	return func(c *Clusterer) error {
		c.centroids = centroid.Copy(centroids)
		return nil
	}
}

// WithRandSource sets the source of randomness for centroid sampling and PAM swaps.
// The source is not safe for concurrent use; do not share it between Clusterers running at once.
func WithRandSource(src rand.Source) Option {
	return func(c *Clusterer) error {
		c.src = src
		return nil
	}
}

// WithSeed gives the Clusterer its own PCG source seeded by seed.
// The same Option value may be applied to many Clusterers; each gets a fresh source.
func WithSeed(seed uint64) Option {
	return func(c *Clusterer) error {
		c.src = newSource(seed)
		return nil
	}
}

// WithLogger sets the logger used for recoverable warnings. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Clusterer) error {
		c.logger = logger
		return nil
	}
}

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
