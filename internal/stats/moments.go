// Package stats computes the four summary moments for a numeric column.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
)

// Moments holds the four summary statistics of one numeric column.
//
// Skewness uses gonum's bias-adjusted Fisher-Pearson estimator; kurtosis is
// excess kurtosis (Fisher definition), so a normal distribution scores 0.
type Moments struct {
	Mean           float64
	StdDev         float64
	Skewness       float64
	ExcessKurtosis float64
}

// Compute derives the moments for col, ignoring missing values. Standard
// deviation is the sample estimate (denominator n-1).
func Compute(ds *dataset.Dataset, col string) (Moments, error) {
	raw, err := ds.Numeric(col)
	if err != nil {
		return Moments{}, err
	}
	vals := dropNaN(raw)
	if len(vals) < 2 {
		return Moments{}, fmt.Errorf("column %q: need at least 2 values, have %d", col, len(vals))
	}
	return Moments{
		Mean:           stat.Mean(vals, nil),
		StdDev:         stat.StdDev(vals, nil),
		Skewness:       stat.Skew(vals, nil),
		ExcessKurtosis: stat.ExKurtosis(vals, nil),
	}, nil
}

func dropNaN(in []float64) []float64 {
	out := make([]float64, 0, len(in))
	for _, v := range in {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
