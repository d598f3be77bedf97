package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/scoretrends/internal/dataset"
	"github.com/KaramelBytes/scoretrends/internal/describe"
	"github.com/KaramelBytes/scoretrends/internal/report"
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Print summary statistics, preview rows and the correlation matrix",
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
		return describe.Print(ds, report.NewConsole(cmd.OutOrStdout()), c.PreviewRows)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
