package report

import (
	"fmt"
	"io"
	"math"
)

// Writer is the sink for all human-readable analysis output. Abstracting it
// lets tests capture the report without scraping stdout.
type Writer interface {
	// Printf appends a formatted line to the report. A trailing newline is
	// added by the implementation.
	Printf(format string, args ...any)
	// Section starts a new titled block in the report.
	Section(title string)
}

// Console writes report lines to an io.Writer, typically os.Stdout.
type Console struct {
	Out io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

func (c *Console) Section(title string) {
	fmt.Fprintf(c.Out, "\n%s:\n", title)
}

// SkewLabel classifies a skewness value. The band is deliberately wide:
// only |skewness| above 2 counts as skewed.
func SkewLabel(skewness float64) string {
	if math.Abs(skewness) > 2 {
		if skewness > 0 {
			return "right-skewed"
		}
		return "left-skewed"
	}
	return "not skewed"
}

// KurtosisLabel classifies an excess kurtosis value. The exact-zero
// mesokurtic branch essentially never fires on real float data; it is kept
// so that the classification is total over the sign of the input.
func KurtosisLabel(excessKurtosis float64) string {
	switch {
	case excessKurtosis < 0:
		return "platykurtic"
	case excessKurtosis == 0:
		return "mesokurtic"
	default:
		return "leptokurtic"
	}
}

// WriteMoments emits the moments block and the interpretation sentence for
// one attribute. Values are rounded to two decimals in the output only; the
// classification uses the unrounded values.
func WriteMoments(w Writer, col string, mean, stddev, skewness, excessKurtosis float64) {
	w.Printf("For the attribute %s:", col)
	w.Printf("Mean = %.2f, Standard Deviation = %.2f, Skewness = %.2f, and Excess Kurtosis = %.2f.",
		mean, stddev, skewness, excessKurtosis)
	w.Printf("The data was %s and %s.", SkewLabel(skewness), KurtosisLabel(excessKurtosis))
}
