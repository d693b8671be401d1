package simd

// Number is the set of element types the kernels operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Index kernels work on uint32 lanes only and are bound once at init by
// bindKernels. Element-typed kernels are generic over Number and cannot be
// stored in a single pointer, so they switch on unrolled instead.
var (
	kernelMidpoints = midpointsGeneric
	kernelAddU32    = addU32Generic
	kernelSelectU32 = selectU32Generic
	kernelAndMask   = andMaskGeneric
)

// unrolled selects the unrolled element-typed kernels.
var unrolled bool

// bindKernels points every kernel at the implementation for isa. Every ISA
// other than Generic shares the unrolled kernels; the ISA only changes the
// lane width strategies align their chunks to.
func bindKernels(isa ISA) {
	unrolled = isa != Generic
	if !unrolled {
		kernelMidpoints = midpointsGeneric
		kernelAddU32 = addU32Generic
		kernelSelectU32 = selectU32Generic
		kernelAndMask = andMaskGeneric
		return
	}
	kernelMidpoints = midpointsUnrolled
	kernelAddU32 = addU32Unrolled
	kernelSelectU32 = selectU32Unrolled
	kernelAndMask = andMaskUnrolled
}

// ============================================================================
// Public API
// ============================================================================

// CountLess returns the number of elements of a that are strictly less than v.
func CountLess[T Number](a []T, v T) int {
	if unrolled {
		return countLessUnrolled(a, v)
	}
	return countLessGeneric(a, v)
}

// CountLessEqual returns the number of elements of a that are less than or equal to v.
func CountLessEqual[T Number](a []T, v T) int {
	if unrolled {
		return countLessEqualUnrolled(a, v)
	}
	return countLessEqualGeneric(a, v)
}

// LessMask sets dst[j] = 1 if a[j] < b[j], else 0.
//
// SAFETY: Assumes len(b) >= len(a) and len(dst) >= len(a).
func LessMask[T Number](a, b []T, dst []byte) {
	if unrolled {
		lessMaskUnrolled(a, b, dst)
		return
	}
	lessMaskGeneric(a, b, dst)
}

// LessEqualMask sets dst[j] = 1 if a[j] <= b[j], else 0.
//
// SAFETY: Assumes len(b) >= len(a) and len(dst) >= len(a).
func LessEqualMask[T Number](a, b []T, dst []byte) {
	if unrolled {
		lessEqualMaskUnrolled(a, b, dst)
		return
	}
	lessEqualMaskGeneric(a, b, dst)
}

// GatherClamped sets dst[j] = src[min(idx[j], len(src)-1)] and
// inBounds[j] = 1 if idx[j] < len(src), else 0.
// With an empty src every dst lane is zeroed and every inBounds lane is 0.
//
// SAFETY: Assumes len(dst) and len(inBounds) >= len(idx).
func GatherClamped[T Number](src []T, idx []uint32, dst []T, inBounds []byte) {
	if len(src) == 0 {
		var zero T
		for j := range idx {
			dst[j] = zero
			inBounds[j] = 0
		}
		return
	}
	if unrolled {
		gatherClampedUnrolled(src, idx, dst, inBounds)
		return
	}
	gatherClampedGeneric(src, idx, dst, inBounds)
}

// Midpoints sets mid[j] = lo[j] + (hi[j]-lo[j])/2.
// The subtraction form never overflows for lo[j] <= hi[j].
func Midpoints(lo, hi, mid []uint32) {
	kernelMidpoints(lo, hi, mid)
}

// AddU32 sets dst[j] = src[j] + k.
func AddU32(src []uint32, k uint32, dst []uint32) {
	kernelAddU32(src, k, dst)
}

// SelectU32 sets dst[j] = a[j] if mask[j] != 0, else b[j], without branching.
// dst may alias a or b.
func SelectU32(mask []byte, a, b, dst []uint32) {
	kernelSelectU32(mask, a, b, dst)
}

// AndMask sets dst[j] &= m[j].
func AndMask(dst, m []byte) {
	kernelAndMask(dst, m)
}

// b2u converts a bool to 0 or 1.
// The compiler lowers this to SETcc/CSET rather than a branch.
func b2u(b bool) uint8 {
	var v uint8
	if b {
		v = 1
	}
	return v
}

// laneMask widens a 0/1 mask byte to an all-zeros or all-ones uint32.
func laneMask(m byte) uint32 {
	return -uint32(m & 1)
}
