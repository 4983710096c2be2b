package config

import "github.com/coral-mesh/buildmeta/internal/constants"

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Logging: LoggingConfig{
			Level:  constants.DefaultLogLevel,
			Pretty: true,
		},
		Metadata: MetadataConfig{
			Path:    constants.DefaultMetadataPath,
			MaxSize: constants.DefaultMetadataMaxSize,
		},
		Output: OutputConfig{
			Format: constants.DefaultOutputFormat,
		},
	}
}
