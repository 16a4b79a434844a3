package kmeans

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/yyyoichi/centroid_clustering/internal/distance"
)

// Assign labels every point with the index of its nearest centroid and returns
// the total assignment cost. Distances are computed one centroid at a time;
// ties go to the lowest centroid index.
func Assign(dist distance.Func, data, centroids [][]float64, labels []int) float64 {
	rows := make([][]float64, len(centroids))
	for j, c := range centroids {
		rows[j] = distance.Distances(dist, c, data)
	}
	col := make([]float64, len(centroids))
	var cost float64
	for i := range data {
		for j := range rows {
			col[j] = rows[j][i]
		}
		labels[i] = floats.MinIdx(col)
		cost += rows[labels[i]][i]
	}
	return cost
}

// Cost returns the sum of distances from every point to the centroid it is labeled with.
func Cost(dist distance.Func, data, centroids [][]float64, labels []int) float64 {
	var cost float64
	for i, p := range data {
		cost += dist(centroids[labels[i]], p)
	}
	return cost
}

// Lloyd runs batch k-means for exactly epochs epochs, updating centroids in place.
// A cluster that owns no point keeps its previous centroid.
// ctx is checked before every epoch.
func Lloyd(ctx context.Context, dist distance.Func, data, centroids [][]float64, epochs int) ([]int, error) {
	labels := make([]int, len(data))
	stores := make([]*MeanStore, len(centroids))
	for j := range stores {
		stores[j] = NewMeanStore(len(data[0]))
	}
	for range epochs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		Assign(dist, data, centroids, labels)

		for _, s := range stores {
			s.Reset()
		}
		for i, p := range data {
			stores[labels[i]].Add(p)
		}
		for j, s := range stores {
			s.Mean(centroids[j])
		}
	}
	return labels, nil
}

// Queen runs the online nearest-update variant for exactly epochs passes.
//
// Points are visited in dataset order. Each point joins its nearest centroid,
// which is then moved at once to the mean of every point currently labeled
// with it, so later points in the same pass see the moved centroid.
// Points not yet labeled in any pass do not count towards a mean.
func Queen(ctx context.Context, dist distance.Func, data, centroids [][]float64, epochs int) ([]int, error) {
	labels := make([]int, len(data))
	for i := range labels {
		labels[i] = -1
	}
	tmp := make([]float64, len(centroids))
	store := NewMeanStore(len(data[0]))
	for range epochs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, p := range data {
			for j, c := range centroids {
				tmp[j] = dist(c, p)
			}
			label := floats.MinIdx(tmp)
			labels[i] = label

			store.Reset()
			for x, q := range data {
				if labels[x] == label {
					store.Add(q)
				}
			}
			store.Mean(centroids[label])
		}
	}
	return labels, nil
}
