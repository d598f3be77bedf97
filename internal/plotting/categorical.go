package plotting

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
)

// Categorical renders box plots of the value column, grouped along the
// x-axis by the category column and split into side-by-side boxes per level
// of the hue column.
func Categorical(ds *dataset.Dataset, value, category, hue, path string) error {
	if err := renderCategorical(ds, value, category, hue, path); err != nil {
		return &RenderError{Plot: "categorical", Err: err}
	}
	return nil
}

func renderCategorical(ds *dataset.Dataset, value, category, hue, path string) error {
	vals, err := ds.Numeric(value)
	if err != nil {
		return err
	}
	cats, err := ds.Categories(category)
	if err != nil {
		return err
	}
	hues, err := ds.Categories(hue)
	if err != nil {
		return err
	}
	catLevels, err := ds.Levels(category)
	if err != nil {
		return err
	}
	hueLevels, err := ds.Levels(hue)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = titleCase(value) + " by " + titleCase(category) + " and " + titleCase(hue)
	p.Y.Label.Text = value

	boxWidth := vg.Points(18)
	// Hue levels within a category get offset around the category position.
	spread := 0.8 / float64(len(hueLevels))
	for ci, cat := range catLevels {
		for hi, h := range hueLevels {
			var data plotter.Values
			for i := range vals {
				if cats[i] != cat || hues[i] != h || math.IsNaN(vals[i]) {
					continue
				}
				data = append(data, vals[i])
			}
			if len(data) == 0 {
				continue
			}
			loc := float64(ci) + spread*(float64(hi)-float64(len(hueLevels)-1)/2)
			b, err := plotter.NewBoxPlot(boxWidth, loc, data)
			if err != nil {
				return err
			}
			b.FillColor = groupColor(hi)
			p.Add(b)
		}
	}

	p.NominalX(catLevels...)
	// Rotate category labels so long education levels do not overlap.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return savePNG(p, 12*vg.Inch, 8*vg.Inch, path)
}
