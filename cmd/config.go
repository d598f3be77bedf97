package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/scoretrends/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the scoretrends configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the active configuration to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig(cmd, nil)
		if err != nil {
			return err
		}
		if err := config.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "✓ Configuration written")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig(cmd, nil)
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
