package plotting

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
)

// Statistical renders a corner-layout pairwise grid over all numeric
// columns: histograms on the diagonal, scatters below it, nothing above.
func Statistical(ds *dataset.Dataset, path string) error {
	if err := renderStatistical(ds, path); err != nil {
		return &RenderError{Plot: "statistical", Err: err}
	}
	return nil
}

func renderStatistical(ds *dataset.Dataset, path string) error {
	cols := ds.NumericColumns()
	if len(cols) == 0 {
		return fmt.Errorf("no numeric columns to plot")
	}
	data := make([][]float64, len(cols))
	for i, col := range cols {
		vals, err := ds.Numeric(col)
		if err != nil {
			return err
		}
		data[i] = vals
	}

	n := len(cols)
	plots := make([][]*plot.Plot, n)
	for i := 0; i < n; i++ {
		plots[i] = make([]*plot.Plot, n)
		for j := 0; j <= i; j++ {
			p := plot.New()
			if i == j {
				if err := addHistogram(p, data[i]); err != nil {
					return fmt.Errorf("histogram %s: %w", cols[i], err)
				}
			} else {
				if err := addPairScatter(p, data[j], data[i]); err != nil {
					return fmt.Errorf("scatter %s vs %s: %w", cols[j], cols[i], err)
				}
			}
			// label only the outer edges of the grid
			if i == n-1 {
				p.X.Label.Text = cols[j]
			}
			if j == 0 {
				p.Y.Label.Text = cols[i]
			}
			plots[i][j] = p
		}
	}
	plots[0][0].Title.Text = "Pairwise Relationships of Numerical Variables"

	// enlarged canvas for readability
	side := vg.Length(n) * 3.5 * vg.Inch
	img := vgimg.New(side, side)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: n, Cols: n,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

func addHistogram(p *plot.Plot, vals []float64) error {
	var clean plotter.Values
	for _, v := range vals {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return fmt.Errorf("no values")
	}
	h, err := plotter.NewHist(clean, 16)
	if err != nil {
		return err
	}
	h.FillColor = groupColor(0)
	p.Add(h)
	return nil
}

func addPairScatter(p *plot.Plot, xs, ys []float64) error {
	var pts plotter.XYs
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no complete pairs")
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Color = withAlpha(groupColor(0), scatterAlpha)
	p.Add(s)
	return nil
}
