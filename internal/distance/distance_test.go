package distance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	test := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"2d", []float64{2, 10}, []float64{8, 4}, 12},
		{"2d_negative", []float64{-1, -1}, []float64{1, 1}, 4},
		{"same", []float64{3.5, -2}, []float64{3.5, -2}, 0},
		{"1d", []float64{4}, []float64{1}, 3},
		{"4d", []float64{0, 1, 2, 3}, []float64{3, 2, 1, 0}, 8},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got := Manhattan(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Manhattan(tt.b, tt.a))
		})
	}
}

func TestManhattanNonNegative(t *testing.T) {
	points := [][]float64{{0, 0}, {0.5, -3}, {-7, 2}, {1e9, -1e9}}
	for _, a := range points {
		for _, b := range points {
			d := Manhattan(a, b)
			assert.GreaterOrEqual(t, d, 0.)
			if a[0] == b[0] && a[1] == b[1] {
				assert.Zero(t, d)
			} else {
				assert.Positive(t, d)
			}
		}
	}
}

func TestDistances(t *testing.T) {
	points := [][]float64{{2, 10}, {2, 5}, {8, 4}}
	got := Distances(Manhattan, []float64{2, 5}, points)
	require.Len(t, got, len(points))
	assert.Equal(t, []float64{5, 0, 7}, got)

	assert.Empty(t, Distances(Manhattan, []float64{0, 0}, nil))
}

func TestParseMetric(t *testing.T) {
	for _, name := range []string{"manhattan", "Manhattan", " L1 ", "cityblock"} {
		m, err := ParseMetric(name)
		require.NoError(t, err, name)
		assert.Equal(t, MetricManhattan, m)
	}

	m, err := ParseMetric("euclid")
	assert.True(t, errors.Is(err, ErrUnsupportedMetric))
	assert.ErrorContains(t, err, `"euclid"`)
	assert.Equal(t, MetricManhattan, m)
}

func TestProvider(t *testing.T) {
	fn, err := Provider(MetricManhattan)
	require.NoError(t, err)
	assert.Equal(t, 3., fn([]float64{0, 0}, []float64{1, 2}))

	fn, err = Provider(Metric(42))
	assert.True(t, errors.Is(err, ErrUnsupportedMetric))
	require.NotNil(t, fn)
	assert.Equal(t, 3., fn([]float64{0, 0}, []float64{1, 2}))
	assert.Equal(t, "unknown(42)", Metric(42).String())
}
