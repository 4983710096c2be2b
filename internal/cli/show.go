package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/buildmeta/internal/buildmeta"
	"github.com/coral-mesh/buildmeta/internal/cli/helpers"
	"github.com/coral-mesh/buildmeta/internal/metastore"
	"github.com/coral-mesh/buildmeta/internal/triple"
)

// showOutput is the structured form of `buildmeta show`.
type showOutput struct {
	Fingerprint string            `json:"fingerprint" yaml:"fingerprint"`
	Metadata    buildmeta.Summary `json:"metadata" yaml:"metadata"`
}

// entryRow is one line of the `buildmeta show` table.
type entryRow struct {
	Kind    string `header:"KIND"`
	Package string `header:"PACKAGE"`
	Name    string `header:"NAME"`
	Path    string `header:"PATH"`
}

func newShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recorded build metadata",
		Long: `Load the build metadata file and print its contents with a fingerprint
of the canonical encoding. Two files with the same fingerprint describe the
same build layout.`,
		Example: `  buildmeta show
  buildmeta show -o json --metadata target/buildmeta.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(a, cmd.OutOrStdout(), a.outputFormat(cmd, format))
		},
	}

	helpers.AddFormatFlag(cmd, &format, helpers.FormatTable, []helpers.OutputFormat{
		helpers.FormatTable,
		helpers.FormatJSON,
		helpers.FormatYAML,
	})

	return cmd
}

func runShow(a *app, w io.Writer, format string) error {
	if err := helpers.ValidateFormat(format, []helpers.OutputFormat{
		helpers.FormatTable,
		helpers.FormatJSON,
		helpers.FormatYAML,
	}); err != nil {
		return err
	}

	meta, err := a.store("").LoadDiscovery()
	if err != nil {
		return err
	}

	summary := meta.ToSummary()
	fingerprint, err := metastore.Fingerprint(summary)
	if err != nil {
		return err
	}

	if format != string(helpers.FormatTable) {
		formatter, err := helpers.NewFormatter(helpers.OutputFormat(format))
		if err != nil {
			return err
		}
		return formatter.Format(showOutput{Fingerprint: fingerprint, Metadata: summary}, w)
	}

	_, _ = fmt.Fprintf(w, "Target directory: %s\n", summary.TargetDirectory)
	_, _ = fmt.Fprintf(w, "Target triple:    %s\n", describeTriple(meta.TargetTriple))
	_, _ = fmt.Fprintf(w, "Fingerprint:      %s\n\n", fingerprint)

	return (&helpers.TableFormatter{}).Format(entryRows(meta), w)
}

// entryRows lists base output directories, then linked paths, then non-test
// binaries, each group in sorted order.
func entryRows(meta *buildmeta.Discovery) []entryRow {
	var rows []entryRow
	for _, dir := range meta.BaseOutputDirectories.Items() {
		rows = append(rows, entryRow{Kind: "output-dir", Package: "-", Name: "-", Path: string(dir)})
	}
	for _, path := range meta.LinkedPaths.Keys() {
		rows = append(rows, entryRow{Kind: "linked-path", Package: "-", Name: "-", Path: string(path)})
	}
	for _, pkg := range meta.NonTestBinaries.Keys() {
		bins, _ := meta.NonTestBinaries.Get(pkg)
		for _, bin := range bins.Items() {
			rows = append(rows, entryRow{
				Kind:    string(bin.Kind),
				Package: string(pkg),
				Name:    bin.Name,
				Path:    string(bin.Path),
			})
		}
	}
	return rows
}

func describeTriple(t *triple.Triple) string {
	if t == nil {
		if host, ok := triple.Host(); ok {
			return fmt.Sprintf("host (%s)", host)
		}
		return "host"
	}
	if !t.Recognized() {
		return fmt.Sprintf("%s (unrecognized)", t)
	}
	return t.String()
}
