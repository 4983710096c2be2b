package buildmeta

import (
	"github.com/coral-mesh/buildmeta/internal/ordered"
	"github.com/coral-mesh/buildmeta/internal/triple"
)

// Summary is the persisted form of BuildMeta. Field names are read by
// external tools and must not change.
//
// Linked paths are stored without the packages that requested them.
type Summary struct {
	TargetDirectory       string                        `json:"target_directory" yaml:"target_directory" jsonschema:"required,description=Absolute directory build artifacts are placed under"`
	BaseOutputDirectories []RelPath                     `json:"base_output_directories" yaml:"base_output_directories" jsonschema:"description=Directories relative to target_directory searched (with their deps subdirectory) for shared libraries"`
	NonTestBinaries       map[PackageID][]NonTestBinary `json:"non_test_binaries" yaml:"non_test_binaries" jsonschema:"description=Non-test binaries keyed by package ID"`
	LinkedPaths           []RelPath                     `json:"linked_paths" yaml:"linked_paths" jsonschema:"description=Directories relative to target_directory requested by dependencies for the library search path"`
	TargetTriple          *string                       `json:"target_triple,omitempty" yaml:"target_triple,omitempty" jsonschema:"description=Compilation target; absent means the host platform"`
}

// ToSummary converts m to its persisted form. Collections are emitted in
// sorted order and are never nil.
func (m *BuildMeta[S]) ToSummary() Summary {
	bins := make(map[PackageID][]NonTestBinary, m.NonTestBinaries.Len())
	for _, pkg := range m.NonTestBinaries.Keys() {
		set, _ := m.NonTestBinaries.Get(pkg)
		bins[pkg] = set.Items()
	}

	return Summary{
		TargetDirectory:       m.TargetDirectory,
		BaseOutputDirectories: m.BaseOutputDirectories.Items(),
		NonTestBinaries:       bins,
		LinkedPaths:           m.LinkedPaths.Keys(),
		TargetTriple:          triple.Serialize(m.TargetTriple),
	}
}

// FromSummary rebuilds metadata from its persisted form. The summary carries
// no phase, so the caller picks S. Linked paths come back with no requesting
// packages. An unrecognized target triple is kept as an unknown triple.
func FromSummary[S Phase](s Summary) *BuildMeta[S] {
	m := &BuildMeta[S]{
		TargetDirectory:       s.TargetDirectory,
		BaseOutputDirectories: ordered.NewSet(s.BaseOutputDirectories...),
		NonTestBinaries:       ordered.NewMap[PackageID, ordered.Set[NonTestBinary]](),
		LinkedPaths:           ordered.NewMap[RelPath, ordered.Set[PackageID]](),
		TargetTriple:          triple.Deserialize(s.TargetTriple),
	}

	for pkg, bins := range s.NonTestBinaries {
		m.NonTestBinaries.Set(pkg, ordered.NewSet(bins...))
	}
	for _, path := range s.LinkedPaths {
		m.LinkedPaths.Set(path, ordered.NewSet[PackageID]())
	}

	return m
}
