//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// FMA is required alongside AVX2 so AVX2 implies a Haswell-class core.
func detectFeatures() {
	cpuFeatures = Features{
		AVX2:     cpu.X86.HasAVX2 && cpu.X86.HasFMA,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512BW: cpu.X86.HasAVX512BW,
	}
}
