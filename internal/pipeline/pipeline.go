// Package pipeline sequences one full analysis pass: load, describe, render
// the plots, compute the moments, and write the interpretation.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/scoretrends/internal/config"
	"github.com/KaramelBytes/scoretrends/internal/dataset"
	"github.com/KaramelBytes/scoretrends/internal/describe"
	"github.com/KaramelBytes/scoretrends/internal/plotting"
	"github.com/KaramelBytes/scoretrends/internal/report"
	"github.com/KaramelBytes/scoretrends/internal/stats"
)

// Columns driving the standard plots.
const (
	RelationalX    = "math score"
	RelationalY    = "reading score"
	CategoricalVal = "writing score"
	CategoricalCat = "parental level of education"
	HueColumn      = "gender"
)

// Pipeline runs the analysis steps against one dataset.
type Pipeline struct {
	Config *config.Analysis
	Report report.Writer
	// Diag receives ✓/⚠ progress lines; defaults to os.Stderr.
	Diag  io.Writer
	Debug bool

	diagMu sync.Mutex // plot goroutines share Diag
}

// New returns a pipeline writing its report to w.
func New(cfg *config.Analysis, w report.Writer) *Pipeline {
	return &Pipeline{Config: cfg, Report: w, Diag: os.Stderr}
}

// Run loads the configured dataset and analyzes it.
func (p *Pipeline) Run() error {
	ds, err := dataset.Load(p.Config.DataPath)
	if err != nil {
		return err
	}
	return p.RunDataset(ds)
}

// RunDataset analyzes an already-loaded dataset: describe, plots, moments,
// interpretation. Plot failures are reported and skipped; everything else
// aborts the run.
func (p *Pipeline) RunDataset(ds *dataset.Dataset) error {
	start := time.Now()
	if p.Debug {
		p.diagf("run %s: %d rows, %d columns", uuid.NewString(), ds.Rows(), len(ds.Columns()))
	}
	if err := ds.Require(p.Config.AnalysisColumn); err != nil {
		return err
	}

	if err := describe.Print(ds, p.Report, p.Config.PreviewRows); err != nil {
		return err
	}

	if err := os.MkdirAll(p.Config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := p.renderPlots(ds); err != nil {
		return err
	}

	m, err := stats.Compute(ds, p.Config.AnalysisColumn)
	if err != nil {
		return err
	}
	p.Report.Section("Moments")
	report.WriteMoments(p.Report, p.Config.AnalysisColumn, m.Mean, m.StdDev, m.Skewness, m.ExcessKurtosis)

	if p.Debug {
		p.diagf("run finished in %s", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// renderPlots draws the three plots concurrently. They share no mutable
// state and write to distinct paths, so ordering between them is free. A
// RenderError only skips its own plot.
func (p *Pipeline) renderPlots(ds *dataset.Dataset) error {
	jobs := []struct {
		kind   string
		render func(path string) error
	}{
		{config.PlotRelational, func(path string) error {
			return plotting.Relational(ds, RelationalX, RelationalY, HueColumn, path)
		}},
		{config.PlotCategorical, func(path string) error {
			return plotting.Categorical(ds, CategoricalVal, CategoricalCat, HueColumn, path)
		}},
		{config.PlotStatistical, func(path string) error {
			return plotting.Statistical(ds, path)
		}},
	}

	var g errgroup.Group
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			path := p.Config.PlotPath(j.kind)
			if err := j.render(path); err != nil {
				var re *plotting.RenderError
				if errors.As(err, &re) {
					p.diagf("⚠ %v", re)
					return nil
				}
				return err
			}
			p.diagf("✓ wrote %s", path)
			return nil
		})
	}
	return g.Wait()
}

func (p *Pipeline) diagf(format string, args ...any) {
	p.diagMu.Lock()
	defer p.diagMu.Unlock()
	out := p.Diag
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, format+"\n", args...)
}
