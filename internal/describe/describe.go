// Package describe prints the exploratory overview of a dataset: summary
// statistics, preview rows, and the numeric correlation matrix. It only
// observes the dataset and never changes downstream computation.
package describe

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
	"github.com/KaramelBytes/scoretrends/internal/report"
)

// Summary holds the describe-block statistics for one numeric column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Summarize computes the describe-block statistics for every numeric column,
// ignoring missing values per column.
func Summarize(ds *dataset.Dataset) ([]Summary, error) {
	var out []Summary
	for _, col := range ds.NumericColumns() {
		raw, err := ds.Numeric(col)
		if err != nil {
			return nil, err
		}
		vals := make([]float64, 0, len(raw))
		for _, v := range raw {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		s := Summary{Column: col, Count: len(vals)}
		if len(vals) > 0 {
			sort.Float64s(vals)
			s.Mean = stat.Mean(vals, nil)
			s.Std = stat.StdDev(vals, nil)
			s.Min = vals[0]
			s.Max = vals[len(vals)-1]
			s.Q25 = stat.Quantile(0.25, stat.Empirical, vals, nil)
			s.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
			s.Q75 = stat.Quantile(0.75, stat.Empirical, vals, nil)
		}
		out = append(out, s)
	}
	return out, nil
}

// Correlations computes the pairwise-complete Pearson correlation matrix
// over all numeric columns. A pair's correlation uses only the rows where
// both values are present.
func Correlations(ds *dataset.Dataset) ([]string, [][]float64, error) {
	cols := ds.NumericColumns()
	data := make([][]float64, len(cols))
	for i, col := range cols {
		vals, err := ds.Numeric(col)
		if err != nil {
			return nil, nil, err
		}
		data[i] = vals
	}

	m := make([][]float64, len(cols))
	for i := range m {
		m[i] = make([]float64, len(cols))
		m[i][i] = 1
	}
	for i := 0; i < len(cols); i++ {
		for j := 0; j < i; j++ {
			r := pairCorrelation(data[i], data[j])
			m[i][j] = r
			m[j][i] = r
		}
	}
	return cols, m, nil
}

func pairCorrelation(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// Print writes the full preprocessing report: the description block, the
// first and last previewRows rows, and the correlation matrix.
func Print(ds *dataset.Dataset, w report.Writer, previewRows int) error {
	sums, err := Summarize(ds)
	if err != nil {
		return err
	}
	w.Section("Dataset Description")
	w.Printf("%-30s %7s %10s %10s %10s %10s %10s %10s %10s",
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range sums {
		w.Printf("%-30s %7d %10.2f %10.2f %10.2f %10.2f %10.2f %10.2f %10.2f",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}

	w.Section("First rows")
	w.Printf("%v", ds.Head(previewRows))
	w.Section("Last rows")
	w.Printf("%v", ds.Tail(previewRows))

	cols, m, err := Correlations(ds)
	if err != nil {
		return err
	}
	w.Section("Correlation Matrix")
	var header strings.Builder
	header.WriteString(fmt.Sprintf("%-30s", ""))
	for _, c := range cols {
		header.WriteString(fmt.Sprintf(" %14s", c))
	}
	w.Printf("%s", header.String())
	for i, c := range cols {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%-30s", c))
		for j := range cols {
			row.WriteString(fmt.Sprintf(" %14.6f", m[i][j]))
		}
		w.Printf("%s", row.String())
	}
	return nil
}
