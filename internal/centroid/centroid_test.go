package centroid

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = [][]float64{{2, 10}, {2, 8}, {2, 5}, {1, 2}, {2, 3}, {4, 8}, {7, 4}, {6, 2}, {8, 4}, {8, 2}}

func TestDeriveBoundaries(t *testing.T) {
	b := DeriveBoundaries(sample)
	assert.Equal(t, Boundaries{{Min: 1, Max: 8}, {Min: 2, Max: 10}}, b)
	assert.NoError(t, b.Validate(2))
}

func TestBoundariesValidate(t *testing.T) {
	test := []struct {
		name string
		b    Boundaries
		dim  int
	}{
		{"short", Boundaries{{0, 1}}, 2},
		{"long", Boundaries{{0, 1}, {0, 1}, {0, 1}}, 2},
		{"inverted", Boundaries{{0, 1}, {3, 2}}, 2},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.b.Validate(tt.dim), ErrShape))
		})
	}
}

func TestUniform(t *testing.T) {
	b := Boundaries{{Min: -1, Max: 1}, {Min: 10, Max: 20}, {Min: 5, Max: 5}}
	centroids := Uniform(b, 50, rand.NewPCG(1, 2))
	require.Len(t, centroids, 50)
	for _, c := range centroids {
		require.Len(t, c, 3)
		for d, r := range b {
			assert.GreaterOrEqual(t, c[d], r.Min)
			assert.LessOrEqual(t, c[d], r.Max)
		}
		assert.Equal(t, 5., c[2])
	}

	again := Uniform(b, 50, rand.NewPCG(1, 2))
	assert.Equal(t, centroids, again, "same seed must give the same centroids")
}

func TestSampleMedoids(t *testing.T) {
	idxs, err := SampleMedoids(sample, 4, rand.NewPCG(7, 7))
	require.NoError(t, err)
	require.Len(t, idxs, 4)

	seen := map[int]bool{}
	for _, idx := range idxs {
		assert.True(t, idx >= 0 && idx < len(sample), "index %d out of range", idx)
		assert.False(t, seen[idx], "index %d sampled twice", idx)
		seen[idx] = true
	}

	again, err := SampleMedoids(sample, 4, rand.NewPCG(7, 7))
	require.NoError(t, err)
	assert.Equal(t, idxs, again)

	all, err := SampleMedoids(sample, len(sample), rand.NewPCG(7, 7))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)
}

func TestSampleMedoidsOutOfRange(t *testing.T) {
	_, err := SampleMedoids(sample, len(sample)+1, rand.NewPCG(1, 1))
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = SampleMedoids(sample, 0, rand.NewPCG(1, 1))
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestDim(t *testing.T) {
	dim, err := Dim(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	for name, data := range map[string][][]float64{
		"empty":  nil,
		"zero":   {{}, {}},
		"ragged": {{1, 2}, {1}},
	} {
		_, err := Dim(data)
		assert.True(t, errors.Is(err, ErrShape), name)
	}
}

func TestCopy(t *testing.T) {
	c := Copy(sample)
	assert.Equal(t, sample, c)
	c[1][1] = 0
	assert.Equal(t, 8., sample[1][1])
}

func TestMedoidIndices(t *testing.T) {
	idxs, err := MedoidIndices(sample, [][]float64{{7, 4}, {2, 10}})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 0}, idxs)

	dup := [][]float64{{1, 1}, {0, 0}, {1, 1}}
	idxs, err = MedoidIndices(dup, [][]float64{{1, 1}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 0}, idxs)

	_, err = MedoidIndices(sample, [][]float64{{7, 5}})
	assert.True(t, errors.Is(err, ErrShape))
}
