// Package plotting renders the three analysis plots as PNG artifacts.
// Generators only read the dataset; rows with missing values in the plotted
// columns are dropped rather than failing the whole figure.
package plotting

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderError indicates a single plot failed to render. The remaining plots
// are unaffected; callers report it and move on.
type RenderError struct {
	Plot string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s plot: %v", e.Plot, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// savePNG renders the plot into memory and writes it atomically, so a failed
// render never leaves a truncated artifact from a previous run behind.
func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return fmt.Errorf("prepare png writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes data to a temp file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// groupColor picks a stable color for the i-th level of a grouping column.
func groupColor(i int) color.Color {
	return plotutil.Color(i)
}

// withAlpha applies partial transparency so overlapping points reveal
// density.
func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

// titleCase capitalizes each word of a column name for use in plot titles.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
