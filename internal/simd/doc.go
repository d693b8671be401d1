// Package simd is the array-processing backend used by the batched search
// strategies.
//
// It exposes the four primitives the strategies are written against:
//
//   - Compare: elementwise LessMask / LessEqualMask over two lanes of values
//   - Gather: dst[j] = src[idx[j]]
//   - Select: branchless dst[j] = mask[j] ? a[j] : b[j]
//   - Reduce: CountLess / CountLessEqual (compare fused with a sum)
//
// # Dispatch
//
// Every primitive has a scalar generic kernel and an unrolled kernel whose
// loop body matches the lane width of the detected ISA, so the compiler can
// keep the lanes in registers and emit conditional moves instead of branches.
// Kernel pointers are bound once at init:
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Set SORTSEARCH_SIMD=generic to force the scalar kernels.
package simd
