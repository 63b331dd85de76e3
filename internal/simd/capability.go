package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that forces a specific ISA.
const EnvOverride = "MEMVEC_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the pure Go implementation (4x uint64 lanes).
	Generic ISA = iota
	// AVX2 represents x86-64 AVX2 (256-bit SIMD).
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "avx2":
		return AVX2, true
	default:
		return Generic, false
	}
}

// Package-level state, written once during init.
var (
	// activeISA is the selected kernel set.
	activeISA ISA

	// hasOverride is true if MEMVEC_SIMD selected the ISA.
	hasOverride bool

	// hasAVX2 is set by capability_amd64.go.
	hasAVX2 bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			return
		}
		// Unknown or unavailable override: fall through to auto-detection.
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU and build.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case AVX2:
		return hasAVX2 && asmEnabled
	default:
		return false
	}
}

func selectBestISA() ISA {
	if runtime.GOARCH == "amd64" && hasAVX2 && asmEnabled {
		return AVX2
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if MEMVEC_SIMD was set to a usable ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX2 returns true if the CPU reports AVX2.
func HasAVX2() bool {
	return hasAVX2
}
