package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/nebula-notes/internal/config"
)

// ConfigCmd returns the `notes config` command.
func ConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.Flags())
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			out := c.OutOrStdout()
			fmt.Fprint(out, string(data))

			if write {
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				fmt.Fprintf(out, "wrote %s\n", config.Path())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "save the effective configuration to the config file")
	return cmd
}
