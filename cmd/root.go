package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/scoretrends/internal/config"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagOut    string
	flagColumn string
)

var rootCmd = &cobra.Command{
	Use:   "scoretrends",
	Short: "ScoreTrends: exploratory statistics and plots for exam score data",
	Long: `ScoreTrends analyzes a student exam-score CSV: it prints descriptive
statistics and a correlation matrix, renders relational, categorical and
statistical plots, and interprets the distribution shape of a chosen column.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.scoretrends/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "output directory for plots (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagColumn, "column", "", "column analyzed for moments (overrides config)")
}

// activeConfig loads the configuration and applies CLI overrides. A positional
// file argument, when given, overrides the configured data path.
func activeConfig(cmd *cobra.Command, args []string) (*config.Analysis, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		c.DataPath = args[0]
	}
	f := cmd.Flags()
	if f.Changed("out") && flagOut != "" {
		c.OutputDir = flagOut
	}
	if f.Changed("column") && flagColumn != "" {
		c.AnalysisColumn = flagColumn
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}
