package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// loadCSV reads numeric rows. A first row that does not parse is taken as a header.
func loadCSV(r io.Reader) (header []string, data [][]float64, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	for i, rec := range records {
		row, err := parseRow(rec)
		if err != nil {
			if i == 0 {
				header = rec
				continue
			}
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		data = append(data, row)
	}
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("no data rows")
	}
	return header, data, nil
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}
