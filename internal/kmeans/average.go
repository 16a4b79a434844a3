package kmeans

import "gonum.org/v1/gonum/floats"

// MeanStore accumulates points and yields their coordinate-wise mean.
type MeanStore struct {
	sum   []float64
	count int
}

func NewMeanStore(dim int) *MeanStore {
	return &MeanStore{sum: make([]float64, dim)}
}

func (s *MeanStore) Add(p []float64) {
	floats.Add(s.sum, p)
	s.count += 1
}

// Mean writes sum/count into dst. It leaves dst untouched when nothing was added.
func (s *MeanStore) Mean(dst []float64) bool {
	if s.count == 0 {
		return false
	}
	for d, v := range s.sum {
		dst[d] = v / float64(s.count)
	}
	return true
}

func (s *MeanStore) Reset() {
	for d := range s.sum {
		s.sum[d] = 0
	}
	s.count = 0
}
