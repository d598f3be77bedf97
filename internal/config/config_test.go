package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DataPath != "data.csv" {
		t.Errorf("DataPath = %q, want data.csv", c.DataPath)
	}
	if c.AnalysisColumn != "math score" {
		t.Errorf("AnalysisColumn = %q, want math score", c.AnalysisColumn)
	}
	if c.PreviewRows != 5 {
		t.Errorf("PreviewRows = %d, want 5", c.PreviewRows)
	}
	if c.RelationalPlot != "relational_plot.png" {
		t.Errorf("RelationalPlot = %q", c.RelationalPlot)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	in := &Analysis{
		DataPath:        "/data/scores.csv",
		OutputDir:       "/tmp/plots",
		AnalysisColumn:  "reading score",
		PreviewRows:     3,
		RelationalPlot:  "rel.png",
		CategoricalPlot: "cat.png",
		StatisticalPlot: "stat.png",
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "data_path: scores.csv\nanalysis_column: writing score\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DataPath != "scores.csv" {
		t.Errorf("DataPath = %q, want scores.csv", c.DataPath)
	}
	if c.AnalysisColumn != "writing score" {
		t.Errorf("AnalysisColumn = %q, want writing score", c.AnalysisColumn)
	}
	// untouched keys keep their defaults
	if c.PreviewRows != 5 {
		t.Errorf("PreviewRows = %d, want default 5", c.PreviewRows)
	}
}

func TestPlotPath(t *testing.T) {
	c := &Analysis{OutputDir: "/out", RelationalPlot: "rel.png", CategoricalPlot: "cat.png", StatisticalPlot: "stat.png"}
	cases := map[string]string{
		PlotRelational:  filepath.Join("/out", "rel.png"),
		PlotCategorical: filepath.Join("/out", "cat.png"),
		PlotStatistical: filepath.Join("/out", "stat.png"),
	}
	for kind, want := range cases {
		if got := c.PlotPath(kind); got != want {
			t.Errorf("PlotPath(%s) = %q, want %q", kind, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := &Analysis{DataPath: "d.csv", AnalysisColumn: "math score", PreviewRows: 5}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	bad := []*Analysis{
		{DataPath: "", AnalysisColumn: "math score", PreviewRows: 5},
		{DataPath: "d.csv", AnalysisColumn: "", PreviewRows: 5},
		{DataPath: "d.csv", AnalysisColumn: "math score", PreviewRows: 0},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: invalid config accepted", i)
		}
	}
}
