package kmeans

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/yyyoichi/centroid_clustering/internal/distance"
)

// PAMResult is the best solution found by PAM.
type PAMResult struct {
	Labels  []int
	Medoids []int // indices into data
	Cost    float64
	// EpochCosts holds the cost of the candidate evaluated in each epoch.
	EpochCosts []float64
}

// PAM searches medoids by randomized swaps.
//
// Every epoch assigns points to the current medoids and records the solution
// if its cost is strictly lower than the best so far. Then one random medoid
// is replaced by a random data point that is not a medoid. The best recorded
// solution is returned, never the last perturbed one.
func PAM(ctx context.Context, dist distance.Func, data [][]float64, medoids []int, epochs int, src rand.Source) (PAMResult, error) {
	r := rand.New(src)
	medoids = slices.Clone(medoids)

	best := PAMResult{Cost: math.Inf(1), EpochCosts: make([]float64, 0, epochs)}
	labels := make([]int, len(data))
	centroids := make([][]float64, len(medoids))
	candidates := make([]int, 0, len(data))

	for range epochs {
		if err := ctx.Err(); err != nil {
			return PAMResult{}, err
		}
		for j, idx := range medoids {
			centroids[j] = data[idx]
		}
		cost := Assign(dist, data, centroids, labels)
		best.EpochCosts = append(best.EpochCosts, cost)
		if best.Labels == nil || cost < best.Cost {
			best.Cost = cost
			best.Labels = slices.Clone(labels)
			best.Medoids = slices.Clone(medoids)
		}

		candidates = candidates[:0]
		for i := range data {
			if !slices.Contains(medoids, i) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		medoids[r.IntN(len(medoids))] = candidates[r.IntN(len(candidates))]
	}
	return best, nil
}
