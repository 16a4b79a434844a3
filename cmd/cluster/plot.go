package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	clustering "github.com/yyyoichi/centroid_clustering"
)

// renderScatter plots columns x and y of data, one series per cluster,
// plus the centroids as a separate series.
func renderScatter(w io.Writer, title string, axis [2]string, data [][]float64, res *clustering.Result, x, y int) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("k=%d cost=%.4g", len(res.Centroids), res.Cost),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: axis[0],
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: axis[1],
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
	)

	groups := make([][]opts.ScatterData, len(res.Centroids))
	for i, p := range data {
		l := res.Labels[i]
		groups[l] = append(groups[l], opts.ScatterData{
			Value:      []any{p[x], p[y]},
			Symbol:     "circle",
			SymbolSize: 10,
			Name:       fmt.Sprintf("#%d", i),
		})
	}
	for l, g := range groups {
		scatter.AddSeries(fmt.Sprintf("cluster %d", l), g)
	}

	centroids := make([]opts.ScatterData, len(res.Centroids))
	for l, c := range res.Centroids {
		centroids[l] = opts.ScatterData{
			Value:      []any{c[x], c[y]},
			Symbol:     "diamond",
			SymbolSize: 20,
			Name:       fmt.Sprintf("centroid %d", l),
		}
	}
	scatter.AddSeries("centroids", centroids)

	return scatter.Render(w)
}

// writeScatter renders the scatter plot into the file at path.
func writeScatter(path, title string, axis [2]string, data [][]float64, res *clustering.Result, x, y int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = renderScatter(f, title, axis, data, res, x, y)
	return errors.Join(err, f.Close())
}
