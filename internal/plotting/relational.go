package plotting

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
)

// scatterAlpha keeps overlapping points readable (~0.7 opacity).
const scatterAlpha = 178

// Relational renders a scatter of x vs y with one colored point series per
// level of the hue column.
func Relational(ds *dataset.Dataset, x, y, hue, path string) error {
	if err := renderRelational(ds, x, y, hue, path); err != nil {
		return &RenderError{Plot: "relational", Err: err}
	}
	return nil
}

func renderRelational(ds *dataset.Dataset, x, y, hue, path string) error {
	xs, err := ds.Numeric(x)
	if err != nil {
		return err
	}
	ys, err := ds.Numeric(y)
	if err != nil {
		return err
	}
	groups, err := ds.Categories(hue)
	if err != nil {
		return err
	}
	levels, err := ds.Levels(hue)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = titleCase(x) + " vs " + titleCase(y) + " by " + titleCase(hue)
	p.X.Label.Text = x
	p.Y.Label.Text = y

	for li, level := range levels {
		var pts plotter.XYs
		for i := range groups {
			if groups[i] != level || math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(2.5)
		s.GlyphStyle.Color = withAlpha(groupColor(li), scatterAlpha)
		p.Add(s)
		p.Legend.Add(level, s)
	}
	p.Legend.Top = true

	return savePNG(p, 8*vg.Inch, 6*vg.Inch, path)
}
