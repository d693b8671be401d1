package simd

// Unrolled kernels. Each processes eight lanes per step through a
// fixed-length subslice so the bounds checks are hoisted out of the body and
// the independent lanes can be scheduled in parallel. Remainders fall back to
// the scalar loop.

const unrollWidth = 8

func countLessUnrolled[T Number](a []T, v T) int {
	var c0, c1, c2, c3 int
	i := 0
	for ; i+unrollWidth <= len(a); i += unrollWidth {
		s := a[i : i+unrollWidth : i+unrollWidth]
		c0 += int(b2u(s[0] < v)) + int(b2u(s[4] < v))
		c1 += int(b2u(s[1] < v)) + int(b2u(s[5] < v))
		c2 += int(b2u(s[2] < v)) + int(b2u(s[6] < v))
		c3 += int(b2u(s[3] < v)) + int(b2u(s[7] < v))
	}
	return c0 + c1 + c2 + c3 + countLessGeneric(a[i:], v)
}

func countLessEqualUnrolled[T Number](a []T, v T) int {
	var c0, c1, c2, c3 int
	i := 0
	for ; i+unrollWidth <= len(a); i += unrollWidth {
		s := a[i : i+unrollWidth : i+unrollWidth]
		c0 += int(b2u(s[0] <= v)) + int(b2u(s[4] <= v))
		c1 += int(b2u(s[1] <= v)) + int(b2u(s[5] <= v))
		c2 += int(b2u(s[2] <= v)) + int(b2u(s[6] <= v))
		c3 += int(b2u(s[3] <= v)) + int(b2u(s[7] <= v))
	}
	return c0 + c1 + c2 + c3 + countLessEqualGeneric(a[i:], v)
}

func lessMaskUnrolled[T Number](a, b []T, dst []byte) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]
	i := 0
	for ; i+unrollWidth <= n; i += unrollWidth {
		x := a[i : i+unrollWidth : i+unrollWidth]
		y := b[i : i+unrollWidth : i+unrollWidth]
		d := dst[i : i+unrollWidth : i+unrollWidth]
		d[0] = b2u(x[0] < y[0])
		d[1] = b2u(x[1] < y[1])
		d[2] = b2u(x[2] < y[2])
		d[3] = b2u(x[3] < y[3])
		d[4] = b2u(x[4] < y[4])
		d[5] = b2u(x[5] < y[5])
		d[6] = b2u(x[6] < y[6])
		d[7] = b2u(x[7] < y[7])
	}
	lessMaskGeneric(a[i:], b[i:], dst[i:])
}

func lessEqualMaskUnrolled[T Number](a, b []T, dst []byte) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]
	i := 0
	for ; i+unrollWidth <= n; i += unrollWidth {
		x := a[i : i+unrollWidth : i+unrollWidth]
		y := b[i : i+unrollWidth : i+unrollWidth]
		d := dst[i : i+unrollWidth : i+unrollWidth]
		d[0] = b2u(x[0] <= y[0])
		d[1] = b2u(x[1] <= y[1])
		d[2] = b2u(x[2] <= y[2])
		d[3] = b2u(x[3] <= y[3])
		d[4] = b2u(x[4] <= y[4])
		d[5] = b2u(x[5] <= y[5])
		d[6] = b2u(x[6] <= y[6])
		d[7] = b2u(x[7] <= y[7])
	}
	lessEqualMaskGeneric(a[i:], b[i:], dst[i:])
}

func gatherClampedUnrolled[T Number](src []T, idx []uint32, dst []T, inBounds []byte) {
	n := len(idx)
	dst = dst[:n]
	inBounds = inBounds[:n]
	size := uint64(len(src))
	last := size - 1
	i := 0
	for ; i+4 <= n; i += 4 {
		k := idx[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		ok := inBounds[i : i+4 : i+4]
		k0, k1, k2, k3 := uint64(k[0]), uint64(k[1]), uint64(k[2]), uint64(k[3])
		d[0] = src[min(k0, last)]
		d[1] = src[min(k1, last)]
		d[2] = src[min(k2, last)]
		d[3] = src[min(k3, last)]
		ok[0] = b2u(k0 < size)
		ok[1] = b2u(k1 < size)
		ok[2] = b2u(k2 < size)
		ok[3] = b2u(k3 < size)
	}
	gatherClampedGeneric(src, idx[i:], dst[i:], inBounds[i:])
}

func midpointsUnrolled(lo, hi, mid []uint32) {
	n := len(lo)
	hi = hi[:n]
	mid = mid[:n]
	i := 0
	for ; i+unrollWidth <= n; i += unrollWidth {
		l := lo[i : i+unrollWidth : i+unrollWidth]
		h := hi[i : i+unrollWidth : i+unrollWidth]
		m := mid[i : i+unrollWidth : i+unrollWidth]
		m[0] = l[0] + (h[0]-l[0])>>1
		m[1] = l[1] + (h[1]-l[1])>>1
		m[2] = l[2] + (h[2]-l[2])>>1
		m[3] = l[3] + (h[3]-l[3])>>1
		m[4] = l[4] + (h[4]-l[4])>>1
		m[5] = l[5] + (h[5]-l[5])>>1
		m[6] = l[6] + (h[6]-l[6])>>1
		m[7] = l[7] + (h[7]-l[7])>>1
	}
	midpointsGeneric(lo[i:], hi[i:], mid[i:])
}

func addU32Unrolled(src []uint32, k uint32, dst []uint32) {
	n := len(src)
	dst = dst[:n]
	i := 0
	for ; i+unrollWidth <= n; i += unrollWidth {
		s := src[i : i+unrollWidth : i+unrollWidth]
		d := dst[i : i+unrollWidth : i+unrollWidth]
		d[0], d[1], d[2], d[3] = s[0]+k, s[1]+k, s[2]+k, s[3]+k
		d[4], d[5], d[6], d[7] = s[4]+k, s[5]+k, s[6]+k, s[7]+k
	}
	addU32Generic(src[i:], k, dst[i:])
}

func selectU32Unrolled(mask []byte, a, b, dst []uint32) {
	n := len(mask)
	a = a[:n]
	b = b[:n]
	dst = dst[:n]
	i := 0
	for ; i+unrollWidth <= n; i += unrollWidth {
		mk := mask[i : i+unrollWidth : i+unrollWidth]
		x := a[i : i+unrollWidth : i+unrollWidth]
		y := b[i : i+unrollWidth : i+unrollWidth]
		d := dst[i : i+unrollWidth : i+unrollWidth]
		for l := range unrollWidth {
			m := laneMask(mk[l])
			d[l] = (x[l] & m) | (y[l] &^ m)
		}
	}
	selectU32Generic(mask[i:], a[i:], b[i:], dst[i:])
}

func andMaskUnrolled(dst, m []byte) {
	n := len(dst)
	m = m[:n]
	i := 0
	for ; i+unrollWidth <= n; i += unrollWidth {
		d := dst[i : i+unrollWidth : i+unrollWidth]
		s := m[i : i+unrollWidth : i+unrollWidth]
		d[0] &= s[0]
		d[1] &= s[1]
		d[2] &= s[2]
		d[3] &= s[3]
		d[4] &= s[4]
		d[5] &= s[5]
		d[6] &= s[6]
		d[7] &= s[7]
	}
	andMaskGeneric(dst[i:], m[i:])
}
