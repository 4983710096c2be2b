package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/coral-mesh/buildmeta/internal/buildmeta"
	"github.com/coral-mesh/buildmeta/internal/triple"
)

// SampleDiscovery returns Discovery metadata for a small workspace rooted at
// targetDir: one base output directory, one linked path and two non-test
// binaries.
func SampleDiscovery(targetDir string) *buildmeta.Discovery {
	m := buildmeta.New(targetDir, triple.MustParse("x86_64-unknown-linux-gnu"))
	buildmeta.AddBaseOutputDirectory(m, "debug")
	buildmeta.AddLinkedPath(m, "debug/build/native-abc/out", "native-sys 0.3.1")
	buildmeta.AddNonTestBinary(m, "tool 1.0.0", buildmeta.NonTestBinary{
		ID:   "tool::bin/tool",
		Name: "tool",
		Kind: buildmeta.BinaryKindBinExe,
		Path: "debug/tool",
	})
	buildmeta.AddNonTestBinary(m, "plugin 1.0.0", buildmeta.NonTestBinary{
		ID:   "plugin::lib",
		Name: "plugin",
		Kind: buildmeta.BinaryKindDylib,
		Path: "debug/libplugin.so",
	})
	return m
}

// WriteSummary writes summary as JSON to dir/name and returns the file path.
func WriteSummary(t *testing.T, dir, name string, summary buildmeta.Summary) string {
	t.Helper()

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("failed to marshal summary: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write summary: %v", err)
	}
	return path
}

// MkdirAll creates slash-separated directories under root.
func MkdirAll(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", rel, err)
		}
	}
}
