package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/coral-mesh/buildmeta/internal/constants"
)

// Loader locates, loads and saves the config file.
type Loader struct {
	dir string
}

// NewLoader creates a new config loader.
// The config directory is resolved in this order:
//  1. BUILDMETA_CONFIG environment variable.
//  2. ~/.buildmeta
//  3. /tmp/buildmeta-fallback (environments without a home directory).
func NewLoader() *Loader {
	if dir := os.Getenv(constants.EnvConfigDir); dir != "" {
		return &Loader{dir: dir}
	}

	if home, err := os.UserHomeDir(); err == nil {
		return &Loader{dir: filepath.Join(home, constants.DefaultDir)}
	}

	// The config file won't exist here, so Load returns defaults + env overrides.
	return &Loader{dir: filepath.Join(os.TempDir(), "buildmeta-fallback")}
}

// NewLoaderAt creates a loader rooted at dir.
func NewLoaderAt(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the path to the config file.
func (l *Loader) Path() string {
	return filepath.Join(l.dir, constants.ConfigFile)
}

// Load loads the config file with defaults and env overrides applied, then validates it.
func (l *Loader) Load() (*Config, error) {
	return LoadFile(l.Path())
}

// LoadFile loads and validates the config at path.
func LoadFile(path string) (*Config, error) {
	cfg, err := NewLayeredLoader().Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the config file.
func (l *Loader) Save(cfg *Config) error {
	//nolint:gosec // G301: Directory needs standard permissions for traversal.
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	//nolint:gosec // G306: Config holds no secrets.
	if err := os.WriteFile(l.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
