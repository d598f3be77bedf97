package dataset

import "fmt"

// DataLoadError indicates the input file was missing, unreadable or could
// not be parsed as a delimited table.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// ColumnNotFoundError indicates a required column is absent from the table.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in dataset", e.Column)
}

// ColumnNotNumericError indicates a numeric operation was requested on a
// column whose detected type is not numeric.
type ColumnNotNumericError struct {
	Column string
	Type   string
}

func (e *ColumnNotNumericError) Error() string {
	return fmt.Sprintf("column %q is not numeric (detected type %s)", e.Column, e.Type)
}
