// Package dataset loads a delimited score table into an immutable in-memory
// frame and exposes typed column access for the analysis steps.
package dataset

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Columns the standard student-performance analysis depends on.
var RequiredColumns = []string{
	"math score",
	"reading score",
	"writing score",
	"gender",
	"parental level of education",
}

// Dataset wraps a loaded dataframe. It is read-only after Load: every
// accessor returns copies or derived values, never the backing storage.
type Dataset struct {
	df dataframe.DataFrame
}

// Load reads a CSV file with a header row and detects column types.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return nil, &DataLoadError{Path: path, Err: df.Err}
	}
	if df.Nrow() == 0 {
		return nil, &DataLoadError{Path: path, Err: fmt.Errorf("no data rows")}
	}
	return &Dataset{df: df}, nil
}

// FromDataFrame wraps an already-built frame. Used by tests and by callers
// that assemble records in memory.
func FromDataFrame(df dataframe.DataFrame) *Dataset {
	return &Dataset{df: df}
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.df.Nrow() }

// Columns returns the column names in dataset order.
func (d *Dataset) Columns() []string { return d.df.Names() }

// Has reports whether the named column exists.
func (d *Dataset) Has(col string) bool {
	for _, name := range d.df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

// Require verifies that every named column exists.
func (d *Dataset) Require(cols ...string) error {
	for _, col := range cols {
		if !d.Has(col) {
			return &ColumnNotFoundError{Column: col}
		}
	}
	return nil
}

func (d *Dataset) col(name string) (series.Series, error) {
	if !d.Has(name) {
		return series.Series{}, &ColumnNotFoundError{Column: name}
	}
	return d.df.Col(name), nil
}

func isNumericType(t series.Type) bool {
	return t == series.Int || t == series.Float
}

// Numeric returns the column values as floats, row-aligned with the dataset:
// missing values come back as NaN so callers can correlate positions across
// columns. Callers that want clean values filter NaN themselves.
func (d *Dataset) Numeric(col string) ([]float64, error) {
	s, err := d.col(col)
	if err != nil {
		return nil, err
	}
	if !isNumericType(s.Type()) {
		return nil, &ColumnNotNumericError{Column: col, Type: string(s.Type())}
	}
	vals := s.Float()
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, nil
}

// Categories returns the column values as strings, row-aligned.
func (d *Dataset) Categories(col string) ([]string, error) {
	s, err := d.col(col)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

// Levels returns the distinct values of a categorical column in first-seen
// order, which keeps plot groupings stable across runs.
func (d *Dataset) Levels(col string) ([]string, error) {
	recs, err := d.Categories(col)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(recs))
	var levels []string
	for _, r := range recs {
		if !seen[r] {
			seen[r] = true
			levels = append(levels, r)
		}
	}
	return levels, nil
}

// NumericColumns returns the names of all numeric columns in dataset order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, name := range d.df.Names() {
		if isNumericType(d.df.Col(name).Type()) {
			out = append(out, name)
		}
	}
	return out
}

// Head returns the first n rows as a printable frame.
func (d *Dataset) Head(n int) dataframe.DataFrame {
	return d.df.Subset(headIndexes(n, d.df.Nrow()))
}

// Tail returns the last n rows as a printable frame.
func (d *Dataset) Tail(n int) dataframe.DataFrame {
	total := d.df.Nrow()
	idx := headIndexes(n, total)
	for i := range idx {
		idx[i] = total - len(idx) + idx[i]
	}
	return d.df.Subset(idx)
}

func headIndexes(n, total int) []int {
	if n > total {
		n = total
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
