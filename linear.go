package sortsearch

import (
	"github.com/hupe1980/sortsearch/internal/parallel"
	"github.com/hupe1980/sortsearch/internal/simd"
	"github.com/hupe1980/sortsearch/resource"
)

// minLinearGrain keeps chunks large enough that goroutine start-up stays
// small next to the O(N) work per query.
const minLinearGrain = 16

// LinearMaskScan compares every query against every reference element and
// counts the elements that order before it: a[i] < v for Left, a[i] <= v
// for Right. The count is the insertion index.
//
// Work is O(N·M) with no loop-carried dependency; queries are split into
// chunks that run in parallel.
type LinearMaskScan[T Scalar] struct {
	controller *resource.Controller
	grain      int
}

// Kind implements Strategy.
func (*LinearMaskScan[T]) Kind() StrategyKind { return Linear }

// Search implements Strategy.
func (s *LinearMaskScan[T]) Search(seq SortedSequence[T], queries QueryBatch[T], side Side) IndexBatch {
	a, q := seq.values, queries.values
	out := make(IndexBatch, len(q))
	if len(a) == 0 {
		return out
	}

	count := simd.CountLess[T]
	if side == Right {
		count = simd.CountLessEqual[T]
	}

	grain := s.grain
	if grain <= 0 {
		grain = parallel.ChunkSize(len(q), s.controller.MaxWorkers(), 1, minLinearGrain)
	}

	parallel.For(s.controller, len(q), grain, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			out[j] = uint32(count(a, q[j]))
		}
	})
	return out
}
