package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coral-mesh/buildmeta/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect buildmeta configuration",
		Long: `Inspect buildmeta configuration.

Configuration Priority:
  1. Command-line flags (highest)
  2. BUILDMETA_* environment variables
  3. Config file (~/.buildmeta/config.yaml)
  4. Built-in defaults

Environment Variables:
  BUILDMETA_CONFIG    Override config directory (default: ~/.buildmeta)`,
	}

	cmd.AddCommand(newConfigViewCmd(a))
	cmd.AddCommand(newConfigPathCmd(a))

	return cmd
}

func newConfigViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long: `Display the configuration after defaults, the config file, environment
variables and flags have been applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				path = config.NewLoader().Path()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
