// Package buildmeta holds the metadata a native build produces for its test
// binaries: where artifacts live, which directories must be on the dynamic
// library search path, and which non-test binaries were built.
//
// BuildMeta is parameterized by a phase. Metadata collected while listing
// binaries is a Discovery value; it must be path-mapped with MapPaths before
// it becomes an Execution value that can resolve library paths. The phase is
// only a type parameter and has no runtime representation.
package buildmeta

import (
	"github.com/coral-mesh/buildmeta/internal/ordered"
	"github.com/coral-mesh/buildmeta/internal/reuse"
	"github.com/coral-mesh/buildmeta/internal/triple"
)

// BinaryListState marks metadata produced while discovering binaries.
type BinaryListState struct{}

// TestListState marks metadata that has been path-mapped for test execution.
type TestListState struct{}

// Phase is the set of lifecycle states a BuildMeta can be in.
type Phase interface {
	BinaryListState | TestListState
}

// BuildMeta is build metadata in lifecycle phase S.
type BuildMeta[S Phase] struct {
	// TargetDirectory is the absolute directory build artifacts are placed under.
	TargetDirectory string

	// BaseOutputDirectories are relative to TargetDirectory. Each one and its
	// "deps" subdirectory go on the dynamic library path.
	BaseOutputDirectories ordered.Set[RelPath]

	// NonTestBinaries are keyed by the package that produced them.
	NonTestBinaries ordered.Map[PackageID, ordered.Set[NonTestBinary]]

	// LinkedPaths are relative to TargetDirectory and go on the dynamic
	// library path if they exist. Values are the packages that requested the
	// path; they are not persisted in summaries.
	LinkedPaths ordered.Map[RelPath, ordered.Set[PackageID]]

	// TargetTriple is the compilation target. Nil means the host platform.
	TargetTriple *triple.Triple

	_ [0]S
}

// Discovery is metadata as collected while listing binaries.
type Discovery = BuildMeta[BinaryListState]

// Execution is metadata ready to be used for running tests.
type Execution = BuildMeta[TestListState]

// New creates empty Discovery metadata. The target directory is not checked.
func New(targetDir string, targetTriple *triple.Triple) *Discovery {
	return &Discovery{
		TargetDirectory:       targetDir,
		BaseOutputDirectories: ordered.NewSet[RelPath](),
		NonTestBinaries:       ordered.NewMap[PackageID, ordered.Set[NonTestBinary]](),
		LinkedPaths:           ordered.NewMap[RelPath, ordered.Set[PackageID]](),
		TargetTriple:          targetTriple,
	}
}

// AddBaseOutputDirectory records a base output directory.
func AddBaseOutputDirectory(m *Discovery, dir RelPath) {
	m.BaseOutputDirectories.Insert(dir)
}

// AddNonTestBinary records a non-test binary produced by pkg.
func AddNonTestBinary(m *Discovery, pkg PackageID, bin NonTestBinary) {
	bins, _ := m.NonTestBinaries.Get(pkg)
	bins.Insert(bin)
	m.NonTestBinaries.Set(pkg, bins)
}

// AddLinkedPath records that requester asked for path to be on the library path.
func AddLinkedPath(m *Discovery, path RelPath, requester PackageID) {
	requesters, _ := m.LinkedPaths.Get(path)
	requesters.Insert(requester)
	m.LinkedPaths.Set(path, requesters)
}

// MapPaths converts Discovery metadata into Execution metadata. The target
// directory is replaced if the mapper supplies one; every other field is
// relative or self-contained and is copied as is. m is not modified.
// A nil mapper leaves the target directory unchanged.
func MapPaths(m *Discovery, mapper reuse.PathMapper) *Execution {
	targetDir := m.TargetDirectory
	if mapper != nil {
		if dir, ok := mapper.NewTargetDir(); ok {
			targetDir = dir
		}
	}

	return &Execution{
		TargetDirectory:       targetDir,
		BaseOutputDirectories: m.BaseOutputDirectories.Clone(),
		NonTestBinaries:       m.NonTestBinaries.Clone(ordered.Set[NonTestBinary].Clone),
		LinkedPaths:           m.LinkedPaths.Clone(ordered.Set[PackageID].Clone),
		TargetTriple:          m.TargetTriple.Clone(),
	}
}

// Clone returns a deep copy of m in the same phase.
func (m *BuildMeta[S]) Clone() *BuildMeta[S] {
	return &BuildMeta[S]{
		TargetDirectory:       m.TargetDirectory,
		BaseOutputDirectories: m.BaseOutputDirectories.Clone(),
		NonTestBinaries:       m.NonTestBinaries.Clone(ordered.Set[NonTestBinary].Clone),
		LinkedPaths:           m.LinkedPaths.Clone(ordered.Set[PackageID].Clone),
		TargetTriple:          m.TargetTriple.Clone(),
	}
}

// Equal reports whether m and other hold the same metadata.
func (m *BuildMeta[S]) Equal(other *BuildMeta[S]) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.TargetDirectory == other.TargetDirectory &&
		m.BaseOutputDirectories.Equal(other.BaseOutputDirectories) &&
		m.NonTestBinaries.Equal(other.NonTestBinaries, ordered.Set[NonTestBinary].Equal) &&
		m.LinkedPaths.Equal(other.LinkedPaths, ordered.Set[PackageID].Equal) &&
		triple.Equal(m.TargetTriple, other.TargetTriple)
}
