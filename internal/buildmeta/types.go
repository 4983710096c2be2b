package buildmeta

import (
	"path/filepath"
	"strings"
)

// RelPath is a slash-separated path relative to the target directory.
type RelPath string

// Compare orders paths bytewise.
func (p RelPath) Compare(other RelPath) int {
	return strings.Compare(string(p), string(other))
}

// Native converts the path to the platform's separator.
func (p RelPath) Native() string {
	return filepath.FromSlash(string(p))
}

// PackageID identifies a package in the build graph.
type PackageID string

// Compare orders package IDs bytewise.
func (id PackageID) Compare(other PackageID) int {
	return strings.Compare(string(id), string(other))
}

// BinaryKind is the kind of a non-test binary.
type BinaryKind string

const (
	// BinaryKindBinExe is an executable binary target.
	BinaryKindBinExe BinaryKind = "bin-exe"

	// BinaryKindDylib is a dynamic library loaded at test time.
	BinaryKindDylib BinaryKind = "dylib"
)

// NonTestBinary describes an artifact built alongside tests that is not itself a test.
type NonTestBinary struct {
	ID   string     `json:"id" yaml:"id" jsonschema:"description=Unique identifier of the binary within the build"`
	Name string     `json:"name" yaml:"name"`
	Kind BinaryKind `json:"kind" yaml:"kind" jsonschema:"description=bin-exe or dylib; other values are preserved"`
	Path RelPath    `json:"path" yaml:"path" jsonschema:"description=Path relative to the target directory"`
}

// Compare orders binaries by ID, then name, kind and path.
func (b NonTestBinary) Compare(other NonTestBinary) int {
	return cmpOr(
		strings.Compare(b.ID, other.ID),
		strings.Compare(b.Name, other.Name),
		strings.Compare(string(b.Kind), string(other.Kind)),
		b.Path.Compare(other.Path),
	)
}

// cmpOr returns the first of its arguments that is not equal to the zero
// value, mirroring cmp.Or (Go 1.22+) for older toolchains.
func cmpOr(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
