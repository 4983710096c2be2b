// Package constants defines shared configuration constants.
package constants

var (
	// ConfigFile is the config file name inside the config directory.
	ConfigFile = "config.yaml"

	// DefaultDir is the config directory under the user's home.
	DefaultDir = ".buildmeta"

	// DefaultMetadataPath is where build metadata is written, relative to the workspace.
	DefaultMetadataPath = "target/buildmeta.json"

	// DefaultMetadataMaxSize bounds how much of a metadata file is read (16MB).
	DefaultMetadataMaxSize int64 = 16 << 20

	// DefaultOutputFormat is the default CLI output format.
	DefaultOutputFormat = "table"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"
)

// Environment variables.
const (
	// EnvConfigDir overrides the config directory.
	EnvConfigDir = "BUILDMETA_CONFIG"
)
