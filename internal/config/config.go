package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Plot kinds recognized by PlotPath and the plot command.
const (
	PlotRelational  = "relational"
	PlotCategorical = "categorical"
	PlotStatistical = "statistical"
)

// Analysis configuration. Input path, output directory and the analysis
// column are explicit here rather than hardcoded relative names, so tests
// and scripted runs can redirect everything to a scratch directory.
type Analysis struct {
	// DataPath is the CSV file to analyze.
	DataPath string `mapstructure:"data_path" yaml:"data_path"`
	// OutputDir receives the rendered plot images.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// AnalysisColumn is the numeric column the moments are computed for.
	AnalysisColumn string `mapstructure:"analysis_column" yaml:"analysis_column"`
	// PreviewRows is the number of head and tail rows shown by describe.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`

	// Plot file names, joined onto OutputDir.
	RelationalPlot  string `mapstructure:"relational_plot" yaml:"relational_plot"`
	CategoricalPlot string `mapstructure:"categorical_plot" yaml:"categorical_plot"`
	StatisticalPlot string `mapstructure:"statistical_plot" yaml:"statistical_plot"`
}

// PlotPath returns the output path for one of the plot kinds.
func (c *Analysis) PlotPath(kind string) string {
	name := ""
	switch kind {
	case PlotRelational:
		name = c.RelationalPlot
	case PlotCategorical:
		name = c.CategoricalPlot
	case PlotStatistical:
		name = c.StatisticalPlot
	}
	return filepath.Join(c.OutputDir, name)
}

// Validate checks fields that later steps depend on.
func (c *Analysis) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if c.AnalysisColumn == "" {
		return fmt.Errorf("analysis_column must not be empty")
	}
	if c.PreviewRows < 1 {
		return fmt.Errorf("preview_rows must be at least 1, got %d", c.PreviewRows)
	}
	return nil
}

// Save writes the given configuration to path. If path is empty it writes to
// ~/.scoretrends/config.yaml, creating the directory if necessary.
func Save(c *Analysis, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".scoretrends")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Analysis, error) {
	v := viper.New()
	v.SetEnvPrefix("SCORETRENDS")
	v.AutomaticEnv()

	v.SetDefault("data_path", "data.csv")
	v.SetDefault("output_dir", ".")
	v.SetDefault("analysis_column", "math score")
	v.SetDefault("preview_rows", 5)
	v.SetDefault("relational_plot", "relational_plot.png")
	v.SetDefault("categorical_plot", "categorical_plot.png")
	v.SetDefault("statistical_plot", "statistical_plot.png")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".scoretrends")
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read: a missing config file falls back to defaults
	_ = v.ReadInConfig()

	var c Analysis
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
