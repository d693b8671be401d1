//go:build !amd64 && !arm64

package simd

// detectFeatures is a no-op on architectures without dedicated kernels;
// the generic kernels are always selected.
func detectFeatures() {}
