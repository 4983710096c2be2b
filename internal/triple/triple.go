// Package triple models compilation target triples such as
// "x86_64-unknown-linux-gnu" and converts them to and from the textual form
// stored in build metadata summaries.
//
// A triple that fails to parse is still representable: Unknown keeps the raw
// string so that "present but unrecognized" stays distinct from "absent" (nil).
package triple

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when parsing an empty triple string.
	ErrEmpty = errors.New("target triple is empty")

	// ErrMalformed is returned when a triple has fewer than two components.
	ErrMalformed = errors.New("target triple is malformed")

	// ErrUnknownArch is returned when the architecture component is not recognized.
	ErrUnknownArch = errors.New("unknown target architecture")

	// ErrUnknownOS is returned when the operating system component is not recognized.
	ErrUnknownOS = errors.New("unknown target operating system")
)

// Triple describes a compilation target platform.
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string

	raw        string
	recognized bool
}

// Parse parses a target triple. Three-component triples are read as
// arch-vendor-os when the middle component is a known vendor and as
// arch-os-env otherwise.
func Parse(s string) (*Triple, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	parts := strings.Split(s, "-")
	t := &Triple{raw: s}

	switch len(parts) {
	case 1:
		return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
	case 2:
		t.Arch, t.OS = parts[0], parts[1]
	case 3:
		if knownVendors[parts[1]] {
			t.Arch, t.Vendor, t.OS = parts[0], parts[1], parts[2]
		} else {
			t.Arch, t.OS, t.Env = parts[0], parts[1], parts[2]
		}
	default:
		t.Arch, t.Vendor, t.OS = parts[0], parts[1], parts[2]
		t.Env = strings.Join(parts[3:], "-")
	}

	if !isKnownArch(t.Arch) {
		return nil, fmt.Errorf("%w %q in %q", ErrUnknownArch, t.Arch, s)
	}
	if !knownOS[t.OS] {
		return nil, fmt.Errorf("%w %q in %q", ErrUnknownOS, t.OS, s)
	}

	t.recognized = true
	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) *Triple {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Unknown returns a triple that carries s verbatim but is not recognized.
func Unknown(s string) *Triple {
	return &Triple{raw: s}
}

// Recognized reports whether the triple was parsed into known components.
func (t *Triple) Recognized() bool {
	return t != nil && t.recognized
}

// String returns the triple in its textual form.
func (t *Triple) String() string {
	if t == nil {
		return ""
	}
	if t.raw != "" {
		return t.raw
	}
	parts := []string{t.Arch}
	for _, p := range []string{t.Vendor, t.OS, t.Env} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// Equal reports whether two triples are the same. Two nil triples are equal.
func Equal(a, b *Triple) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String() && a.recognized == b.recognized
}

// Clone returns a copy of t, or nil if t is nil.
func (t *Triple) Clone() *Triple {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Serialize converts a triple to its summary form. A nil triple (host platform)
// serializes to nil.
func Serialize(t *Triple) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// Deserialize converts a summary value back into a triple. A nil input yields
// nil; an unparseable string yields an Unknown triple rather than an error.
func Deserialize(s *string) *Triple {
	if s == nil {
		return nil
	}
	t, err := Parse(*s)
	if err != nil {
		return Unknown(*s)
	}
	return t
}
