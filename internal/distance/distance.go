package distance

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrUnsupportedMetric = errors.New("unsupported metric")
)

// Metric represents the distance metric used between a centroid and a point.
type Metric int

const (
	MetricManhattan Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricManhattan:
		return "manhattan"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Func computes the distance between a centroid and a point of equal length.
type Func func(centroid, point []float64) float64

// ParseMetric resolves a metric name. Unknown names resolve to MetricManhattan
// and are reported with an error wrapping ErrUnsupportedMetric, so the caller
// can warn and continue.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan", "l1", "cityblock":
		return MetricManhattan, nil
	default:
		return MetricManhattan, fmt.Errorf("%w: %q", ErrUnsupportedMetric, name)
	}
}

// Provider returns the distance function for the given metric.
// For an unknown metric it still returns Manhattan, along with ErrUnsupportedMetric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricManhattan:
		return Manhattan, nil
	default:
		return Manhattan, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}

// Manhattan returns the sum of absolute coordinate differences.
// Lengths must match.
func Manhattan(centroid, point []float64) float64 {
	return floats.Distance(centroid, point, 1)
}

// Distances computes fn(centroid, p) for every point, in order.
func Distances(fn Func, centroid []float64, points [][]float64) []float64 {
	dst := make([]float64, len(points))
	for i, p := range points {
		dst[i] = fn(centroid, p)
	}
	return dst
}
