// Package reuse supports running tests against a build produced elsewhere,
// e.g. extracted from an archive into a different directory.
package reuse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotDirectory is returned when a remap path exists but is not a directory.
var ErrNotDirectory = errors.New("remap path is not a directory")

// PathMapper decides where a reused build's directories live now.
type PathMapper interface {
	// NewTargetDir returns the directory that replaces the original target
	// directory, or false if the target directory is unchanged.
	NewTargetDir() (string, bool)
}

// NoMapping is a PathMapper that never overrides anything.
type NoMapping struct{}

// NewTargetDir implements PathMapper.
func (NoMapping) NewTargetDir() (string, bool) { return "", false }

// Mapper remaps the workspace root and target directory of a reused build.
type Mapper struct {
	workspaceRoot string
	targetDir     string
}

// NewMapper creates a Mapper. Empty arguments mean "do not remap". Non-empty
// arguments must name existing directories; they are stored as absolute,
// symlink-resolved paths.
func NewMapper(workspaceRemap, targetDirRemap string) (*Mapper, error) {
	m := &Mapper{}

	if workspaceRemap != "" {
		dir, err := canonicalDir(workspaceRemap)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace remap: %w", err)
		}
		m.workspaceRoot = dir
	}

	if targetDirRemap != "" {
		dir, err := canonicalDir(targetDirRemap)
		if err != nil {
			return nil, fmt.Errorf("invalid target directory remap: %w", err)
		}
		m.targetDir = dir
	}

	return m, nil
}

// NewTargetDir implements PathMapper.
func (m *Mapper) NewTargetDir() (string, bool) {
	if m == nil || m.targetDir == "" {
		return "", false
	}
	return m.targetDir, true
}

// NewWorkspaceRoot returns the remapped workspace root, if any.
func (m *Mapper) NewWorkspaceRoot() (string, bool) {
	if m == nil || m.workspaceRoot == "" {
		return "", false
	}
	return m.workspaceRoot, true
}

func canonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrNotDirectory, path)
	}
	return resolved, nil
}
