package centroid

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

var (
	ErrShape      = errors.New("shape mismatch")
	ErrOutOfRange = errors.New("out of range")
)

// Bound is the closed sampling range of one dimension.
type Bound struct {
	Min, Max float64
}

// Boundaries holds one Bound per dimension.
type Boundaries []Bound

// DeriveBoundaries returns the per-dimension minimum and maximum of data.
// data must be non-empty and rectangular.
func DeriveBoundaries(data [][]float64) Boundaries {
	dim := len(data[0])
	b := make(Boundaries, dim)
	col := make([]float64, len(data))
	for d := range dim {
		for i, p := range data {
			col[i] = p[d]
		}
		b[d] = Bound{Min: floats.Min(col), Max: floats.Max(col)}
	}
	return b
}

// Validate reports whether b fits points of dimension dim.
func (b Boundaries) Validate(dim int) error {
	if len(b) != dim {
		return fmt.Errorf("%w: %d boundaries for %d dimensions", ErrShape, len(b), dim)
	}
	for d, r := range b {
		if r.Min > r.Max {
			return fmt.Errorf("%w: boundary %d has min %v > max %v", ErrShape, d, r.Min, r.Max)
		}
	}
	return nil
}

// Uniform draws k centroids whose coordinates are sampled independently and
// uniformly from [Min, Max) of each Bound; Max itself is never drawn unless Min == Max.
// The centroids need not coincide with any data point.
func Uniform(b Boundaries, k int, src rand.Source) [][]float64 {
	dists := make([]distuv.Uniform, len(b))
	for d, r := range b {
		dists[d] = distuv.Uniform{Min: r.Min, Max: r.Max, Src: src}
	}
	centroids := make([][]float64, k)
	for i := range centroids {
		c := make([]float64, len(b))
		for d := range dists {
			c[d] = dists[d].Rand()
		}
		centroids[i] = c
	}
	return centroids
}

// SampleMedoids picks k distinct data points uniformly at random and returns
// their indices in data.
func SampleMedoids(data [][]float64, k int, src rand.Source) ([]int, error) {
	if k < 1 || k > len(data) {
		return nil, fmt.Errorf("%w: cannot sample %d medoids from %d points", ErrOutOfRange, k, len(data))
	}
	idxs := make([]int, k)
	sampleuv.WithoutReplacement(idxs, len(data), src)
	return idxs, nil
}

// Dim returns the dimension shared by every point in data.
func Dim(data [][]float64) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty dataset", ErrShape)
	}
	dim := len(data[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: zero-dimensional points", ErrShape)
	}
	for i, p := range data {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has %d dimensions, want %d", ErrShape, i, len(p), dim)
		}
	}
	return dim, nil
}

// Copy returns a deep copy of points.
func Copy(points [][]float64) [][]float64 {
	dst := make([][]float64, len(points))
	for i, p := range points {
		dst[i] = append([]float64(nil), p...)
	}
	return dst
}

// MedoidIndices locates every medoid in data. Equal-valued medoids are
// matched to distinct data points while enough copies exist.
func MedoidIndices(data, medoids [][]float64) ([]int, error) {
	used := make(map[int]bool, len(medoids))
	idxs := make([]int, len(medoids))
	for j, m := range medoids {
		idx := -1
		for i, p := range data {
			if !floats.Equal(p, m) {
				continue
			}
			if idx < 0 {
				idx = i
			}
			if !used[i] {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: medoid %d is not a data point", ErrShape, j)
		}
		used[idx] = true
		idxs[j] = idx
	}
	return idxs, nil
}
