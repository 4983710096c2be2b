package buildmeta

import (
	"os"
	"path/filepath"
	"strings"
)

// DylibPaths returns the directories to prepend to the platform's dynamic
// library search variable, in the order the build tool itself uses:
// linked paths that exist on disk, then for each base output directory its
// "deps" subdirectory followed by the directory itself.
//
// Base output directories are not checked for existence. The result is not
// deduplicated.
func DylibPaths(m *Execution) []string {
	return dylibPaths(m, pathExists)
}

func dylibPaths(m *Execution, exists func(string) bool) []string {
	paths := make([]string, 0, m.LinkedPaths.Len()+2*m.BaseOutputDirectories.Len())

	// Linked paths come before base output directories.
	for _, rel := range m.LinkedPaths.Keys() {
		abs := filepath.Join(m.TargetDirectory, rel.Native())
		if exists(abs) {
			paths = append(paths, abs)
		}
	}

	for _, rel := range m.BaseOutputDirectories.Items() {
		base := filepath.Join(m.TargetDirectory, rel.Native())
		paths = append(paths, filepath.Join(base, "deps"), base)
	}

	return paths
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DylibPathEnvVar returns the environment variable the dynamic loader
// searches on goos.
func DylibPathEnvVar(goos string) string {
	switch goos {
	case "windows":
		return "PATH"
	case "darwin", "ios":
		return "DYLD_FALLBACK_LIBRARY_PATH"
	case "aix":
		return "LIBPATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}

// JoinDylibPath prepends paths to an existing search-path value. Empty
// entries of existing are dropped.
func JoinDylibPath(paths []string, existing string) string {
	parts := make([]string, 0, len(paths)+1)
	parts = append(parts, paths...)
	for _, p := range filepath.SplitList(existing) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, string(os.PathListSeparator))
}
