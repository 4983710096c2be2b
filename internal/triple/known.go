package triple

import (
	"runtime"
	"strings"
)

var knownArches = map[string]bool{
	"x86_64":      true,
	"x86_64h":     true,
	"i386":        true,
	"i586":        true,
	"i686":        true,
	"aarch64":     true,
	"aarch64_be":  true,
	"arm64e":      true,
	"arm64_32":    true,
	"arm":         true,
	"armeb":       true,
	"powerpc":     true,
	"powerpc64":   true,
	"powerpc64le": true,
	"s390x":       true,
	"sparc":       true,
	"sparc64":     true,
	"sparcv9":     true,
	"wasm32":      true,
	"wasm64":      true,
	"loongarch64": true,
	"hexagon":     true,
	"csky":        true,
	"m68k":        true,
	"nvptx64":     true,
	"bpfel":       true,
	"bpfeb":       true,
	"avr":         true,
	"msp430":      true,
}

// Sub-architecture families spelled with a version suffix, e.g. armv7, thumbv7em, riscv64gc.
var knownArchPrefixes = []string{"armv", "thumbv", "riscv32", "riscv64", "mips"}

var knownVendors = map[string]bool{
	"unknown":  true,
	"pc":       true,
	"apple":    true,
	"sun":      true,
	"nvidia":   true,
	"fortanix": true,
	"wrs":      true,
	"uwp":      true,
	"sony":     true,
	"nintendo": true,
	"esp":      true,
	"kmc":      true,
	"unikraft": true,
	"openwrt":  true,
	"win7":     true,
}

var knownOS = map[string]bool{
	"linux":      true,
	"windows":    true,
	"darwin":     true,
	"macos":      true,
	"ios":        true,
	"tvos":       true,
	"watchos":    true,
	"visionos":   true,
	"freebsd":    true,
	"netbsd":     true,
	"openbsd":    true,
	"dragonfly":  true,
	"android":    true,
	"solaris":    true,
	"illumos":    true,
	"fuchsia":    true,
	"redox":      true,
	"haiku":      true,
	"hermit":     true,
	"uefi":       true,
	"wasi":       true,
	"wasip1":     true,
	"wasip2":     true,
	"emscripten": true,
	"aix":        true,
	"none":       true,
	"unknown":    true,
	"l4re":       true,
	"vxworks":    true,
	"nto":        true,
	"espidf":     true,
	"horizon":    true,
	"psp":        true,
	"cuda":       true,
	"hurd":       true,
	"teeos":      true,
	"cygwin":     true,
}

func isKnownArch(arch string) bool {
	if knownArches[arch] {
		return true
	}
	for _, prefix := range knownArchPrefixes {
		if strings.HasPrefix(arch, prefix) {
			return true
		}
	}
	return false
}

// hostTriples maps GOOS/GOARCH pairs to the triple a native toolchain targets by default.
var hostTriples = map[string]string{
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"linux/386":     "i686-unknown-linux-gnu",
	"linux/arm":     "armv7-unknown-linux-gnueabihf",
	"linux/riscv64": "riscv64gc-unknown-linux-gnu",
	"linux/ppc64le": "powerpc64le-unknown-linux-gnu",
	"linux/s390x":   "s390x-unknown-linux-gnu",
	"darwin/amd64":  "x86_64-apple-darwin",
	"darwin/arm64":  "aarch64-apple-darwin",
	"windows/amd64": "x86_64-pc-windows-msvc",
	"windows/arm64": "aarch64-pc-windows-msvc",
	"windows/386":   "i686-pc-windows-msvc",
	"freebsd/amd64": "x86_64-unknown-freebsd",
	"netbsd/amd64":  "x86_64-unknown-netbsd",
	"openbsd/amd64": "x86_64-unknown-openbsd",
	"illumos/amd64": "x86_64-unknown-illumos",
}

// Host returns the triple for the platform this binary runs on, or false if
// the GOOS/GOARCH pair has no known equivalent.
func Host() (*Triple, bool) {
	return ForPlatform(runtime.GOOS, runtime.GOARCH)
}

// ForPlatform returns the default triple for a GOOS/GOARCH pair.
func ForPlatform(goos, goarch string) (*Triple, bool) {
	s, ok := hostTriples[goos+"/"+goarch]
	if !ok {
		return nil, false
	}
	return MustParse(s), true
}
