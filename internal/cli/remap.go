package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/buildmeta/internal/buildmeta"
	"github.com/coral-mesh/buildmeta/internal/cli/helpers"
	"github.com/coral-mesh/buildmeta/internal/errors"
)

type remapOptions struct {
	remap helpers.RemapFlags
	out   string
}

func newRemapCmd(a *app) *cobra.Command {
	opts := &remapOptions{}

	cmd := &cobra.Command{
		Use:   "remap",
		Short: "Write build metadata remapped for test execution",
		Long: `Load the build metadata, apply the directory remaps and write the result to
--out. Relative paths are left as recorded; only the target directory moves.
Linked paths are written without the packages that requested them.`,
		Example: `  buildmeta remap --target-dir-remap /mnt/extracted/target --out /tmp/buildmeta.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd.Context(), a, cmd.OutOrStdout(), opts)
		},
	}

	opts.remap.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.out, "out", "", "Path to write the remapped metadata to")
	errors.Must(cmd.MarkFlagRequired("out"), "failed to mark --out as required")

	return cmd
}

func runRemap(ctx context.Context, a *app, w io.Writer, opts *remapOptions) error {
	discovered, err := a.store("").LoadDiscovery()
	if err != nil {
		return err
	}

	mapper, err := a.mapper(opts.remap.WorkspaceRemap, opts.remap.TargetDirRemap)
	if err != nil {
		return err
	}

	execution := buildmeta.MapPaths(discovered, mapper)
	if err := a.store(opts.out).Save(ctx, execution.ToSummary()); err != nil {
		return err
	}

	a.logger.Info().
		Str("from", discovered.TargetDirectory).
		Str("to", execution.TargetDirectory).
		Str("out", opts.out).
		Msg("Wrote remapped build metadata")

	_, err = fmt.Fprintf(w, "Wrote %s (target directory %s)\n", opts.out, execution.TargetDirectory)
	return err
}
