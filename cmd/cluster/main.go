package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	clustering "github.com/yyyoichi/centroid_clustering"
)

func main() {
	var (
		in      = flag.String("in", "", "CSV file with one point per row")
		out     = flag.String("out", "", "HTML file for the scatter plot (optional)")
		k       = flag.Int("k", 3, "number of clusters")
		epochs  = flag.Int("epochs", 10, "number of epochs")
		variant = flag.String("variant", "lloyd", "lloyd, queen or pam")
		metric  = flag.String("metric", "manhattan", "distance metric")
		seed    = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
		x       = flag.Int("x", 0, "column plotted on the x axis")
		y       = flag.Int("y", 1, "column plotted on the y axis")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("Input file path is required")
	}
	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	header, data, err := loadCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to read CSV file: %v", err)
	}
	log.Printf("Loaded %d points with %d dimensions from %s\n", len(data), len(data[0]), *in)

	res, err := clustering.Cluster(context.Background(), data,
		clustering.WithK(*k),
		clustering.WithEpochs(*epochs),
		clustering.WithVariantName(*variant),
		clustering.WithMetricName(*metric),
		clustering.WithSeed(*seed),
		clustering.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	if err != nil {
		log.Fatalf("Failed to cluster: %v", err)
	}

	for i, l := range res.Labels {
		fmt.Printf("%d\t%d\n", i, l)
	}
	for l, c := range res.Centroids {
		fmt.Printf("centroid %d\t%v\n", l, c)
	}
	fmt.Printf("cost\t%g\n", res.Cost)

	if *out == "" {
		return
	}
	dim := len(data[0])
	if *x < 0 || *x >= dim || *y < 0 || *y >= dim {
		log.Fatalf("Plot columns x=%d y=%d out of range for %d dimensions", *x, *y, dim)
	}
	axis := [2]string{fmt.Sprintf("column %d", *x), fmt.Sprintf("column %d", *y)}
	if len(header) == dim {
		axis = [2]string{header[*x], header[*y]}
	}
	title := fmt.Sprintf("%s (%s)", filepath.Base(*in), *variant)
	if err := writeScatter(*out, title, axis, data, res, *x, *y); err != nil {
		log.Fatalf("Failed to write scatter plot: %v", err)
	}
	log.Printf("Generated: %s\n", *out)
}
