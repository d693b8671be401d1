package sortsearch

import (
	"math/bits"
	"unsafe"

	"github.com/hupe1980/sortsearch/internal/parallel"
	"github.com/hupe1980/sortsearch/internal/simd"
	"github.com/hupe1980/sortsearch/resource"
)

// minBinaryGrain is the smallest query chunk worth a goroutine; the
// per-chunk work is only O(log N) per query.
const minBinaryGrain = 1024

// IterationCount returns the fixed number of lockstep iterations the Binary
// strategy runs for a reference of length n: bits.Len(n+1).
//
// Each iteration shrinks an interval of width w to at most floor(w/2), so
// bits.Len(n) iterations collapse [0, n] to a point; bits.Len(n+1) is never
// smaller and exceeds it by one only when n+1 is a power of two.
func IterationCount(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len64(uint64(n) + 1)
}

// VectorizedBinarySearch keeps a [lo, hi) bound pair per query and narrows
// all of them together for a fixed number of iterations. There is no
// per-query branch or early exit: every iteration computes the midpoints,
// gathers the reference values, compares and selects the new bounds for the
// whole chunk.
//
// Once a lane has converged (lo == hi) further iterations leave it
// unchanged. A lane converged at N would gather past the end, so the gather
// is clamped and the lane's comparison is masked off instead.
type VectorizedBinarySearch[T Scalar] struct {
	controller      *resource.Controller
	grain           int
	extraIterations int
}

// Kind implements Strategy.
func (*VectorizedBinarySearch[T]) Kind() StrategyKind { return Binary }

// Search implements Strategy.
func (s *VectorizedBinarySearch[T]) Search(seq SortedSequence[T], queries QueryBatch[T], side Side) IndexBatch {
	a, q := seq.values, queries.values
	out := make(IndexBatch, len(q))
	iterations := IterationCount(len(a))
	if iterations == 0 {
		return out
	}
	iterations += s.extraIterations

	grain := s.grain
	if grain <= 0 {
		grain = parallel.ChunkSize(len(q), s.controller.MaxWorkers(), simd.ActiveISA().Lanes(), minBinaryGrain)
	}

	parallel.For(s.controller, len(q), grain, func(lo, hi int) {
		narrow(a, q[lo:hi], out[lo:hi], iterations, side)
	})
	return out
}

// narrow runs the lockstep search for one chunk of queries, writing the
// converged lower bounds into lo.
func narrow[T Scalar](a, q []T, lo []uint32, iterations int, side Side) {
	m := len(q)
	n := uint32(len(a))

	hi := make([]uint32, m)
	mid := make([]uint32, m)
	next := make([]uint32, m)
	ref := make([]T, m)
	cond := make([]byte, m)
	inBounds := make([]byte, m)

	for j := range hi {
		lo[j] = 0
		hi[j] = n
	}

	compare := simd.LessMask[T]
	if side == Right {
		compare = simd.LessEqualMask[T]
	}

	for range iterations {
		simd.Midpoints(lo, hi, mid)
		simd.GatherClamped(a, mid, ref, inBounds)
		compare(ref, q, cond)
		simd.AndMask(cond, inBounds)
		simd.AddU32(mid, 1, next)
		simd.SelectU32(cond, next, lo, lo)
		simd.SelectU32(cond, hi, mid, hi)
	}
}

// binaryScratchBytes is the scratch memory narrow allocates across all
// chunks of an m-query search.
func binaryScratchBytes[T Scalar](m int) int64 {
	var zero T
	elem := int64(unsafe.Sizeof(zero))
	// hi, mid, next (uint32) + ref (T) + cond, inBounds (byte)
	return int64(m) * (3*4 + elem + 2)
}
