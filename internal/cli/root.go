// Package cli implements the buildmeta command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/buildmeta/internal/config"
	"github.com/coral-mesh/buildmeta/internal/logging"
	"github.com/coral-mesh/buildmeta/internal/metastore"
	"github.com/coral-mesh/buildmeta/internal/reuse"
	"github.com/coral-mesh/buildmeta/pkg/version"
)

// app holds state shared by all subcommands. It is populated by the root
// command's PersistentPreRunE before any subcommand runs.
type app struct {
	configPath   string
	logLevel     string
	metadataPath string

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the buildmeta command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "buildmeta",
		Short: "Inspect and remap native build metadata for test runs",
		Long: `Inspect build metadata recorded for a native build and prepare it for running
tests, possibly on another machine or in another directory.

The metadata file records the target directory, the output directories and
linked paths that go on the dynamic library search path, and the non-test
binaries built alongside the tests.

Configuration is read from ~/.buildmeta/config.yaml (or $BUILDMETA_CONFIG),
then overridden by BUILDMETA_* environment variables and flags.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.buildmeta/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&a.metadataPath, "metadata", "m", "", "Build metadata file (overrides metadata.path)")
	_ = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	_ = cmd.MarkPersistentFlagFilename("metadata", "json")
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newDylibPathsCmd(a))
	cmd.AddCommand(newRemapCmd(a))
	cmd.AddCommand(newSchemaCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.NewLoader().Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.metadataPath != "" {
		cfg.Metadata.Path = a.metadataPath
	}

	a.cfg = cfg
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Pretty = cfg.Logging.Pretty
	logCfg.Output = cmd.ErrOrStderr()
	a.logger = logging.NewWithComponent(logCfg, "cli")

	a.logger.Debug().
		Str("metadata", cfg.Metadata.Path).
		Str("command", cmd.Name()).
		Msg("Configuration loaded")

	return nil
}

// store returns the metadata store at path, or at the configured path when
// path is empty.
func (a *app) store(path string) *metastore.Store {
	if path == "" {
		path = a.cfg.Metadata.Path
	}
	return metastore.New(path, metastore.Options{
		MaxSize:       a.cfg.Metadata.MaxSize,
		AllowSymlinks: a.cfg.Metadata.AllowSymlinks,
	}, a.logger)
}

// mapper builds the path mapper from flag values, falling back to the
// configured remaps for flags left empty.
func (a *app) mapper(workspaceRemap, targetDirRemap string) (*reuse.Mapper, error) {
	if workspaceRemap == "" {
		workspaceRemap = a.cfg.Reuse.WorkspaceRemap
	}
	if targetDirRemap == "" {
		targetDirRemap = a.cfg.Reuse.TargetDirRemap
	}

	m, err := reuse.NewMapper(workspaceRemap, targetDirRemap)
	if err != nil {
		return nil, err
	}
	if dir, ok := m.NewWorkspaceRoot(); ok {
		a.logger.Debug().Str("workspace_root", dir).Msg("Remapping workspace root")
	}
	if dir, ok := m.NewTargetDir(); ok {
		a.logger.Debug().Str("target_dir", dir).Msg("Remapping target directory")
	}
	return m, nil
}

// outputFormat returns the --format flag value if it was set, else the
// configured default.
func (a *app) outputFormat(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("format") {
		return flagValue
	}
	return a.cfg.Output.Format
}
