package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/scoretrends/internal/pipeline"
	"github.com/KaramelBytes/scoretrends/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full analysis: describe, plots, moments, interpretation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig(cmd, args)
		if err != nil {
			return err
		}
		p := pipeline.New(c, report.NewConsole(cmd.OutOrStdout()))
		p.Diag = cmd.ErrOrStderr()
		p.Debug = debug
		return p.Run()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
