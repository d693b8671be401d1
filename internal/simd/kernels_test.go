package simd

import (
	"math"
	"math/rand"
	"testing"
)

func TestCountLess(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		v         float64
		less      int
		lessEqual int
	}{
		{name: "Empty", values: []float64{}, v: 1, less: 0, lessEqual: 0},
		{name: "All below", values: []float64{1, 2, 3}, v: 10, less: 3, lessEqual: 3},
		{name: "All above", values: []float64{1, 2, 3}, v: 0, less: 0, lessEqual: 0},
		{name: "Ties", values: []float64{1, 3, 3, 5, 7}, v: 3, less: 1, lessEqual: 3},
		{
			name:      "17 elements (tests remainder handling)",
			values:    []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
			v:         12,
			less:      11,
			lessEqual: 12,
		},
		{name: "NaN query", values: []float64{1, 2, 3}, v: math.NaN(), less: 0, lessEqual: 0},
		{name: "Infinity", values: []float64{math.Inf(-1), 0, math.Inf(1)}, v: math.Inf(1), less: 2, lessEqual: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountLess(tc.values, tc.v); got != tc.less {
				t.Errorf("CountLess = %d, want %d", got, tc.less)
			}
			if got := CountLessEqual(tc.values, tc.v); got != tc.lessEqual {
				t.Errorf("CountLessEqual = %d, want %d", got, tc.lessEqual)
			}
			if got := countLessUnrolled(tc.values, tc.v); got != tc.less {
				t.Errorf("countLessUnrolled = %d, want %d", got, tc.less)
			}
			if got := countLessEqualGeneric(tc.values, tc.v); got != tc.lessEqual {
				t.Errorf("countLessEqualGeneric = %d, want %d", got, tc.lessEqual)
			}
		})
	}
}

func TestCountLess_IntegerTypes(t *testing.T) {
	ints := []int16{-4, -1, 0, 0, 9, 100}
	if got := CountLess(ints, 0); got != 2 {
		t.Errorf("CountLess(int16) = %d, want 2", got)
	}
	if got := CountLessEqual(ints, 0); got != 4 {
		t.Errorf("CountLessEqual(int16) = %d, want 4", got)
	}

	type celsius float32
	temps := []celsius{-3.5, 0, 21, 21, 37}
	if got := CountLessEqual(temps, 21); got != 4 {
		t.Errorf("CountLessEqual(named float) = %d, want 4", got)
	}
}

func TestMasks_UnrolledMatchesGeneric(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 7, 8, 9, 31, 64, 1000} {
		a := make([]float32, n)
		b := make([]float32, n)
		for i := range a {
			// Small integer range forces plenty of equal pairs.
			a[i] = float32(r.Intn(5))
			b[i] = float32(r.Intn(5))
		}

		want := make([]byte, n)
		got := make([]byte, n)

		lessMaskGeneric(a, b, want)
		lessMaskUnrolled(a, b, got)
		assertBytesEqual(t, "LessMask", n, want, got)

		lessEqualMaskGeneric(a, b, want)
		lessEqualMaskUnrolled(a, b, got)
		assertBytesEqual(t, "LessEqualMask", n, want, got)

		LessEqualMask(a, b, got)
		assertBytesEqual(t, "LessEqualMask(dispatch)", n, want, got)
	}
}

func TestGatherClamped(t *testing.T) {
	src := []float64{10, 20, 30}
	idx := []uint32{0, 2, 3, 1, 7, 0, 2, 3, 1}
	wantVals := []float64{10, 30, 30, 20, 30, 10, 30, 30, 20}
	wantOK := []byte{1, 1, 0, 1, 0, 1, 1, 0, 1}

	for name, fn := range map[string]func([]float64, []uint32, []float64, []byte){
		"generic":  gatherClampedGeneric[float64],
		"unrolled": gatherClampedUnrolled[float64],
		"dispatch": GatherClamped[float64],
	} {
		t.Run(name, func(t *testing.T) {
			dst := make([]float64, len(idx))
			ok := make([]byte, len(idx))
			fn(src, idx, dst, ok)
			for j := range idx {
				if dst[j] != wantVals[j] || ok[j] != wantOK[j] {
					t.Errorf("lane %d: got (%v, %d), want (%v, %d)", j, dst[j], ok[j], wantVals[j], wantOK[j])
				}
			}
		})
	}
}

func TestGatherClamped_EmptySource(t *testing.T) {
	dst := []int32{5, 5}
	ok := []byte{1, 1}
	GatherClamped([]int32{}, []uint32{0, 3}, dst, ok)
	for j := range dst {
		if dst[j] != 0 || ok[j] != 0 {
			t.Errorf("lane %d: got (%d, %d), want (0, 0)", j, dst[j], ok[j])
		}
	}
}

func TestMidpoints_NoOverflow(t *testing.T) {
	const top = math.MaxUint32
	lo := []uint32{0, 0, top - 1, top, 5, 0, 1, 2, 3}
	hi := []uint32{0, 1, top, top, 9, top, 4, 2, 10}
	want := []uint32{0, 0, top - 1, top, 7, top / 2, 2, 2, 6}

	for name, fn := range map[string]func(lo, hi, mid []uint32){
		"generic":  midpointsGeneric,
		"unrolled": midpointsUnrolled,
	} {
		mid := make([]uint32, len(lo))
		fn(lo, hi, mid)
		for j := range mid {
			if mid[j] != want[j] {
				t.Errorf("%s lane %d: got %d, want %d", name, j, mid[j], want[j])
			}
		}
	}
}

func TestSelectU32(t *testing.T) {
	mask := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	a := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []uint32{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	want := []uint32{1, 12, 3, 4, 15, 16, 7, 18, 9, 10}

	for name, fn := range map[string]func(mask []byte, a, b, dst []uint32){
		"generic":  selectU32Generic,
		"unrolled": selectU32Unrolled,
	} {
		dst := make([]uint32, len(mask))
		fn(mask, a, b, dst)
		for j := range dst {
			if dst[j] != want[j] {
				t.Errorf("%s lane %d: got %d, want %d", name, j, dst[j], want[j])
			}
		}

		// In-place select into b.
		inPlace := append([]uint32(nil), b...)
		fn(mask, a, inPlace, inPlace)
		for j := range inPlace {
			if inPlace[j] != want[j] {
				t.Errorf("%s in-place lane %d: got %d, want %d", name, j, inPlace[j], want[j])
			}
		}
	}
}

func TestAddU32AndAndMask(t *testing.T) {
	src := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	dst := make([]uint32, len(src))
	AddU32(src, 1, dst)
	for j := range dst {
		if dst[j] != src[j]+1 {
			t.Errorf("AddU32 lane %d: got %d, want %d", j, dst[j], src[j]+1)
		}
	}

	m := []byte{1, 1, 0, 0, 1, 0, 1, 1, 0, 1}
	x := []byte{1, 0, 1, 0, 1, 1, 1, 0, 0, 1}
	want := []byte{1, 0, 0, 0, 1, 0, 1, 0, 0, 1}
	AndMask(x, m)
	assertBytesEqual(t, "AndMask", len(x), want, x)
}

func assertBytesEqual(t *testing.T, op string, n int, want, got []byte) {
	t.Helper()
	for j := 0; j < n; j++ {
		if want[j] != got[j] {
			t.Fatalf("%s n=%d lane %d: got %d, want %d", op, n, j, got[j], want[j])
		}
	}
}

func TestBindKernels_AllISAsAgree(t *testing.T) {
	defer bindKernels(ActiveISA())

	r := rand.New(rand.NewSource(11))
	f := make([]float32, 37)
	q := make([]float32, 37)
	ints := make([]int64, 37)
	for i := range f {
		f[i] = float32(r.Intn(9))
		q[i] = float32(r.Intn(9))
		ints[i] = int64(r.Intn(9)) - 4
	}

	bindKernels(Generic)
	wantLess, wantInts := CountLess(f, 4), CountLessEqual(ints, 0)
	wantMask := make([]byte, len(f))
	LessEqualMask(f, q, wantMask)

	for _, isa := range []ISA{NEON, SVE2, AVX2, AVX512} {
		bindKernels(isa)
		if !unrolled {
			t.Fatalf("%v: expected unrolled kernels", isa)
		}
		if got := CountLess(f, 4); got != wantLess {
			t.Errorf("%v CountLess(float32) = %d, want %d", isa, got, wantLess)
		}
		if got := CountLessEqual(ints, 0); got != wantInts {
			t.Errorf("%v CountLessEqual(int64) = %d, want %d", isa, got, wantInts)
		}
		got := make([]byte, len(f))
		LessEqualMask(f, q, got)
		assertBytesEqual(t, isa.String()+" LessEqualMask", len(f), wantMask, got)
	}

	bindKernels(Generic)
	if unrolled {
		t.Fatal("generic must bind the scalar kernels")
	}
}
