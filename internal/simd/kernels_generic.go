package simd

// Scalar reference kernels. These are the SORTSEARCH_SIMD=generic path and
// the baseline the unrolled kernels are tested against.

func countLessGeneric[T Number](a []T, v T) int {
	n := 0
	for _, x := range a {
		n += int(b2u(x < v))
	}
	return n
}

func countLessEqualGeneric[T Number](a []T, v T) int {
	n := 0
	for _, x := range a {
		n += int(b2u(x <= v))
	}
	return n
}

func lessMaskGeneric[T Number](a, b []T, dst []byte) {
	for j := range a {
		dst[j] = b2u(a[j] < b[j])
	}
}

func lessEqualMaskGeneric[T Number](a, b []T, dst []byte) {
	for j := range a {
		dst[j] = b2u(a[j] <= b[j])
	}
}

func gatherClampedGeneric[T Number](src []T, idx []uint32, dst []T, inBounds []byte) {
	n := uint64(len(src))
	last := n - 1
	for j, k := range idx {
		i := min(uint64(k), last)
		dst[j] = src[i]
		inBounds[j] = b2u(uint64(k) < n)
	}
}

func midpointsGeneric(lo, hi, mid []uint32) {
	for j := range lo {
		mid[j] = lo[j] + (hi[j]-lo[j])>>1
	}
}

func addU32Generic(src []uint32, k uint32, dst []uint32) {
	for j := range src {
		dst[j] = src[j] + k
	}
}

func selectU32Generic(mask []byte, a, b, dst []uint32) {
	for j := range mask {
		m := laneMask(mask[j])
		dst[j] = (a[j] & m) | (b[j] &^ m)
	}
}

func andMaskGeneric(dst, m []byte) {
	for j := range dst {
		dst[j] &= m[j]
	}
}
