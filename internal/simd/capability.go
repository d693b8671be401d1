package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA identifies the instruction set the kernels are tuned for.
type ISA uint8

const (
	// Generic selects the scalar kernels.
	Generic ISA = iota
	// NEON is ARM64 Advanced SIMD (128-bit).
	NEON
	// SVE2 is ARM64 SVE2.
	SVE2
	// AVX2 is x86-64 AVX2 with FMA (256-bit).
	AVX2
	// AVX512 is x86-64 AVX-512 F+BW (512-bit).
	AVX512
)

// EnvOverride names the environment variable that forces a specific ISA.
const EnvOverride = "SORTSEARCH_SIMD"

var isaInfo = [...]struct {
	name  string
	lanes int
}{
	Generic: {"generic", 1},
	NEON:    {"neon", 4},
	SVE2:    {"sve2", 4},
	AVX2:    {"avx2", 8},
	AVX512:  {"avx512", 16},
}

// String returns the lower-case ISA name.
func (i ISA) String() string {
	if int(i) < len(isaInfo) {
		return isaInfo[i].name
	}
	return "unknown"
}

// Lanes returns the number of 32-bit lanes one vector register holds.
// Strategies align their chunk sizes to it.
func (i ISA) Lanes() int {
	if int(i) < len(isaInfo) {
		return isaInfo[i].lanes
	}
	return 1
}

// ParseISA parses an ISA name, ignoring case and surrounding space.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range isaInfo {
		if info.name == s {
			return ISA(i), true
		}
	}
	return Generic, false
}

// Features are the CPU feature bits relevant to kernel selection.
type Features struct {
	ASIMD    bool
	SVE2     bool
	AVX2     bool // with FMA
	AVX512F  bool
	AVX512BW bool
}

// Supports reports whether isa can run on a CPU with these features.
func (f Features) Supports(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return f.ASIMD
	case SVE2:
		return f.SVE2
	case AVX2:
		return f.AVX2
	case AVX512:
		return f.AVX512F && f.AVX512BW
	default:
		return false
	}
}

// best returns the widest supported ISA. Darwin reports SVE2 unreliably,
// so NEON wins there.
func (f Features) best() ISA {
	for _, isa := range []ISA{AVX512, AVX2, SVE2, NEON} {
		if isa == SVE2 && runtime.GOOS == "darwin" {
			continue
		}
		if f.Supports(isa) {
			return isa
		}
	}
	return Generic
}

var (
	cpuFeatures Features
	activeISA   ISA
	hasOverride bool
)

func init() {
	detectFeatures()
	initCapabilities()
}

// initCapabilities picks the active ISA, honoring SORTSEARCH_SIMD when it
// names a supported ISA, and binds the kernels for it.
func initCapabilities() {
	activeISA = cpuFeatures.best()
	hasOverride = false

	if v := os.Getenv(EnvOverride); v != "" {
		if isa, ok := ParseISA(v); ok && cpuFeatures.Supports(isa) {
			activeISA = isa
			hasOverride = true
		}
	}

	bindKernels(activeISA)
}

// ActiveISA returns the ISA the kernels are bound to.
func ActiveISA() ISA { return activeISA }

// IsOverridden reports whether SORTSEARCH_SIMD selected the active ISA.
func IsOverridden() bool { return hasOverride }

// DetectedFeatures returns the CPU features found at init.
func DetectedFeatures() Features { return cpuFeatures }
