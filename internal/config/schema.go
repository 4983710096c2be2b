// Package config provides configuration loading and management.
package config

// SchemaVersion is the configuration schema version.
const SchemaVersion = "1"

// Config represents ~/.buildmeta/config.yaml.
type Config struct {
	Version  string         `yaml:"version"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metadata MetadataConfig `yaml:"metadata"`
	Reuse    ReuseConfig    `yaml:"reuse"`
	Output   OutputConfig   `yaml:"output"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"BUILDMETA_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"BUILDMETA_LOG_PRETTY"`
}

// MetadataConfig locates and bounds the persisted metadata file.
type MetadataConfig struct {
	Path          string `yaml:"path" env:"BUILDMETA_METADATA_PATH"`
	MaxSize       int64  `yaml:"max_size" env:"BUILDMETA_METADATA_MAX_SIZE"`
	AllowSymlinks bool   `yaml:"allow_symlinks" env:"BUILDMETA_METADATA_ALLOW_SYMLINKS"`
}

// ReuseConfig remaps directories when running tests against a build made elsewhere.
type ReuseConfig struct {
	WorkspaceRemap string `yaml:"workspace_remap,omitempty" env:"BUILDMETA_WORKSPACE_REMAP"`
	TargetDirRemap string `yaml:"target_dir_remap,omitempty" env:"BUILDMETA_TARGET_DIR_REMAP"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	Format string `yaml:"format" env:"BUILDMETA_FORMAT"`
}
