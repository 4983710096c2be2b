package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/buildmeta/internal/buildmeta"
	"github.com/coral-mesh/buildmeta/internal/errors"
)

// SchemaID identifies the published summary schema.
const SchemaID = "https://github.com/coral-mesh/buildmeta/schema/summary.json"

func newSchemaCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the build metadata file",
		Long: `Print the JSON schema describing the build metadata summary file, for tools
that read the file without linking against this module.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return writeSchema(cmd.OutOrStdout())
			}

			//nolint:gosec // G304: Output path supplied by the user.
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer errors.DeferClose(a.logger, f, "failed to close schema file")

			if err := writeSchema(f); err != nil {
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the schema to a file instead of stdout")

	return cmd
}

// summarySchema reflects the JSON schema of buildmeta.Summary with all
// definitions inlined.
func summarySchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&buildmeta.Summary{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Build metadata summary"
	return schema
}

func writeSchema(w io.Writer) error {
	data, err := json.MarshalIndent(summarySchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
