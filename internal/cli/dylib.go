package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/buildmeta/internal/buildmeta"
	"github.com/coral-mesh/buildmeta/internal/cli/helpers"
)

type dylibPathsOptions struct {
	remap helpers.RemapFlags
	env   bool
}

func newDylibPathsCmd(a *app) *cobra.Command {
	opts := &dylibPathsOptions{}

	cmd := &cobra.Command{
		Use:   "dylib-paths",
		Short: "Print the dynamic library search path for running tests",
		Long: `Compute the directories test binaries need on their dynamic library search
path, in the order the build tool uses:

  1. linked paths requested by dependencies, if they exist now
  2. each base output directory's deps subdirectory, then the directory itself

With --env, print a single VAR=value assignment for the host's loader
variable, prepending the computed paths to its current value.`,
		Example: `  buildmeta dylib-paths
  buildmeta dylib-paths --target-dir-remap /mnt/extracted/target --env`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDylibPaths(a, cmd.OutOrStdout(), opts)
		},
	}

	opts.remap.AddFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.env, "env", false, "Print as an environment variable assignment")

	return cmd
}

func runDylibPaths(a *app, w io.Writer, opts *dylibPathsOptions) error {
	discovered, err := a.store("").LoadDiscovery()
	if err != nil {
		return err
	}

	mapper, err := a.mapper(opts.remap.WorkspaceRemap, opts.remap.TargetDirRemap)
	if err != nil {
		return err
	}

	paths := buildmeta.DylibPaths(buildmeta.MapPaths(discovered, mapper))
	a.logger.Debug().Int("count", len(paths)).Msg("Resolved dynamic library paths")

	if opts.env {
		name := buildmeta.DylibPathEnvVar(runtime.GOOS)
		_, err := fmt.Fprintf(w, "%s=%s\n", name, buildmeta.JoinDylibPath(paths, os.Getenv(name)))
		return err
	}

	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
