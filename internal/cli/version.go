package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/buildmeta/internal/cli/helpers"
	"github.com/coral-mesh/buildmeta/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// The version is printed even when the config file is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if format != string(helpers.FormatTable) {
				formatter, err := helpers.NewFormatter(helpers.OutputFormat(format))
				if err != nil {
					return err
				}
				return formatter.Format(info, cmd.OutOrStdout())
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "buildmeta version %s\n", info.Version)
			_, _ = fmt.Fprintf(w, "Git commit: %s\n", info.GitCommit)
			_, _ = fmt.Fprintf(w, "Build date: %s\n", info.BuildDate)
			_, _ = fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
			_, _ = fmt.Fprintf(w, "Platform:   %s\n", info.Platform)
			return nil
		},
	}

	helpers.AddFormatFlag(cmd, &format, helpers.FormatTable, []helpers.OutputFormat{
		helpers.FormatTable,
		helpers.FormatJSON,
		helpers.FormatYAML,
	})

	return cmd
}
