package helpers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddFormatFlag adds a standard --format/-o flag to a command.
// Validates that the format is in the supportedFormats list.
func AddFormatFlag(cmd *cobra.Command, formatVar *string, defaultFormat OutputFormat, supportedFormats []OutputFormat) {
	formatNames := formatStrings(supportedFormats)

	description := fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringVarP(formatVar, "format", "o", string(defaultFormat), description)

	// Add shell completion for format flag.
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// RemapFlags holds the directory remaps for running tests against a build
// made elsewhere.
type RemapFlags struct {
	WorkspaceRemap string
	TargetDirRemap string
}

// AddFlags adds the remap flags to a FlagSet.
func (f *RemapFlags) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&f.WorkspaceRemap, "workspace-remap", "", "Workspace root to use in place of the recorded one")
	flags.StringVar(&f.TargetDirRemap, "target-dir-remap", "", "Target directory to use in place of the recorded one")
	for _, name := range []string{"workspace-remap", "target-dir-remap"} {
		_ = flags.SetAnnotation(name, cobra.BashCompSubdirsInDir, []string{})
	}
}

// ValidateFormat checks if the format is in the supported list.
func ValidateFormat(format string, supported []OutputFormat) error {
	for _, s := range supported {
		if format == string(s) {
			return nil
		}
	}

	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(formatStrings(supported), ", "))
}

func formatStrings(formats []OutputFormat) []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}
