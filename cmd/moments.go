package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
	"github.com/KaramelBytes/scoretrends/internal/report"
	"github.com/KaramelBytes/scoretrends/internal/stats"
)

var momentsCmd = &cobra.Command{
	Use:   "moments [file]",
	Short: "Compute the four moments of a column and interpret its shape",
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
		m, err := stats.Compute(ds, c.AnalysisColumn)
		if err != nil {
			return err
		}
		w := report.NewConsole(cmd.OutOrStdout())
		report.WriteMoments(w, c.AnalysisColumn, m.Mean, m.StdDev, m.Skewness, m.ExcessKurtosis)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(momentsCmd)
}
