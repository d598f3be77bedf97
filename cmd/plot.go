package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/scoretrends/internal/config"
	"github.com/KaramelBytes/scoretrends/internal/dataset"
	"github.com/KaramelBytes/scoretrends/internal/pipeline"
	"github.com/KaramelBytes/scoretrends/internal/plotting"
)

var plotOnly string

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Render the analysis plots as PNG files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig(cmd, args)
		if err != nil {
			return err
		}
		ds, err := dataset.Load(c.DataPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		kinds := []string{config.PlotRelational, config.PlotCategorical, config.PlotStatistical}
		if plotOnly != "" {
			switch plotOnly {
			case config.PlotRelational, config.PlotCategorical, config.PlotStatistical:
				kinds = []string{plotOnly}
			default:
				return fmt.Errorf("unsupported --only: %s (use relational|categorical|statistical)", plotOnly)
			}
		}

		for _, kind := range kinds {
			path := c.PlotPath(kind)
			err := renderPlot(ds, kind, path)
			if err == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✓ wrote %s\n", path)
				continue
			}
			// with a single requested plot the failure is the command's result
			if plotOnly != "" {
				return err
			}
			var re *plotting.RenderError
			if errors.As(err, &re) {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ %v\n", re)
				continue
			}
			return err
		}
		return nil
	},
}

func renderPlot(ds *dataset.Dataset, kind, path string) error {
	switch kind {
	case config.PlotRelational:
		return plotting.Relational(ds, pipeline.RelationalX, pipeline.RelationalY, pipeline.HueColumn, path)
	case config.PlotCategorical:
		return plotting.Categorical(ds, pipeline.CategoricalVal, pipeline.CategoricalCat, pipeline.HueColumn, path)
	case config.PlotStatistical:
		return plotting.Statistical(ds, path)
	}
	return fmt.Errorf("unknown plot kind %q", kind)
}

func init() {
	plotCmd.Flags().StringVar(&plotOnly, "only", "", "render a single plot: relational|categorical|statistical")
	rootCmd.AddCommand(plotCmd)
}
